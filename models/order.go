package models

import "time"

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

const (
	TimeASAP     = "asap"
	TimeSpecific = "specific"
)

type DeliveryZone struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	MinOrder Cents  `json:"min_order"`
	Fee      Cents  `json:"fee"`
}

type Quote struct {
	OrderType   OrderType     `json:"order_type"`
	Zone        *DeliveryZone `json:"zone,omitempty"`
	Subtotal    Cents         `json:"subtotal"`
	DeliveryFee Cents         `json:"delivery_fee"`
	Total       Cents         `json:"total"`
	CanOrder    bool          `json:"can_order"`
	Message     string        `json:"message,omitempty"`
}

type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	Postcode    string `json:"postcode"`
}

type TimeChoice struct {
	Mode string `json:"mode"`
	At   string `json:"at,omitempty"`
}

type OrderItem struct {
	ItemID      int      `json:"item_id"`
	Number      int      `json:"number,omitempty"`
	Name        string   `json:"name"`
	Quantity    int      `json:"quantity"`
	UnitPrice   Cents    `json:"unit_price"`
	ExtrasPrice Cents    `json:"extras_price"`
	LineTotal   Cents    `json:"line_total"`
	Size        string   `json:"size,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Extras      []string `json:"extras,omitempty"`
	PastaType   string   `json:"pasta_type,omitempty"`
	Sauce       string   `json:"sauce,omitempty"`
	Exclusions  []string `json:"exclusions,omitempty"`
	SideDish    string   `json:"side_dish,omitempty"`
}

type OrderMetadata struct {
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	CartID    string `json:"cart_id,omitempty"`
}

type OrderRecord struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customer_name"`
	Phone        string        `json:"phone"`
	OrderType    OrderType     `json:"order_type"`
	Address      *Address      `json:"address,omitempty"`
	ZoneKey      string        `json:"zone_key,omitempty"`
	ZoneLabel    string        `json:"zone_label,omitempty"`
	Time         TimeChoice    `json:"time"`
	Items        []OrderItem   `json:"items"`
	Subtotal     Cents         `json:"subtotal"`
	DeliveryFee  Cents         `json:"delivery_fee"`
	Total        Cents         `json:"total"`
	Note         string        `json:"note,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	Metadata     OrderMetadata `json:"metadata"`
}

type SubmitResult struct {
	Order       OrderRecord `json:"order"`
	Message     string      `json:"message"`
	WhatsAppURL string      `json:"whatsapp_url"`
}
