package models

type CartItemRequest struct {
	ItemID    int       `json:"item_id" binding:"required"`
	Selection Selection `json:"selection"`
}

type UpdateCartItemRequest struct {
	ItemID    int       `json:"item_id" binding:"required"`
	Selection Selection `json:"selection"`
	Quantity  int       `json:"quantity" binding:"max=99"`
}

type QuoteRequest struct {
	OrderType OrderType `json:"order_type" binding:"required,oneof=pickup delivery"`
	Zone      string    `json:"zone"`
}

type CheckoutRequest struct {
	Name         string    `json:"name" binding:"required,min=2"`
	Phone        string    `json:"phone" binding:"required,min=10"`
	OrderType    OrderType `json:"order_type" binding:"required,oneof=pickup delivery"`
	Zone         string    `json:"zone"`
	Street       string    `json:"street"`
	HouseNumber  string    `json:"house_number"`
	Postcode     string    `json:"postcode"`
	TimeMode     string    `json:"time_mode" binding:"required,oneof=asap specific"`
	SpecificTime string    `json:"specific_time"`
	Note         string    `json:"note"`
}

type OpenConfiguratorRequest struct {
	ItemID int `json:"item_id" binding:"required"`
}

type ConfiguratorEventRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
