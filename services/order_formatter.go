package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"doener-shop/models"
)

const (
	minNameLength  = 2
	minPhoneLength = 10
)

// ValidateCheckout checks the customer form independent of the cart.
func ValidateCheckout(req models.CheckoutRequest) error {
	if utf8.RuneCountInString(strings.TrimSpace(req.Name)) < minNameLength {
		return validationErr("name", "name must have at least %d characters", minNameLength)
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Phone)) < minPhoneLength {
		return validationErr("phone", "phone number must have at least %d characters", minPhoneLength)
	}

	switch req.OrderType {
	case models.OrderTypePickup:
	case models.OrderTypeDelivery:
		if req.Zone == "" {
			return validationErr("zone", "delivery zone is required")
		}
		if strings.TrimSpace(req.Street) == "" {
			return validationErr("street", "street is required for delivery")
		}
		if strings.TrimSpace(req.HouseNumber) == "" {
			return validationErr("house_number", "house number is required for delivery")
		}
		if strings.TrimSpace(req.Postcode) == "" {
			return validationErr("postcode", "postcode is required for delivery")
		}
	default:
		return validationErr("order_type", "unknown order type %q", req.OrderType)
	}

	switch req.TimeMode {
	case models.TimeASAP:
	case models.TimeSpecific:
		if strings.TrimSpace(req.SpecificTime) == "" {
			return validationErr("specific_time", "time is required")
		}
	default:
		return validationErr("time_mode", "unknown time mode %q", req.TimeMode)
	}
	return nil
}

// BuildOrderRecord expands the cart into an order record with resolved prices.
func BuildOrderRecord(lines []models.CartLine, req models.CheckoutRequest, quote models.Quote, now time.Time, meta models.OrderMetadata) models.OrderRecord {
	record := models.OrderRecord{
		CustomerName: strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		OrderType:    req.OrderType,
		Time:         models.TimeChoice{Mode: req.TimeMode},
		Items:        make([]models.OrderItem, 0, len(lines)),
		Subtotal:     quote.Subtotal,
		DeliveryFee:  quote.DeliveryFee,
		Total:        quote.Total,
		Note:         strings.TrimSpace(req.Note),
		CreatedAt:    now,
		Metadata:     meta,
	}

	if req.TimeMode == models.TimeSpecific {
		record.Time.At = req.SpecificTime
	}

	if req.OrderType == models.OrderTypeDelivery {
		record.Address = &models.Address{
			Street:      strings.TrimSpace(req.Street),
			HouseNumber: strings.TrimSpace(req.HouseNumber),
			Postcode:    strings.TrimSpace(req.Postcode),
		}
		if quote.Zone != nil {
			record.ZoneKey = quote.Zone.Key
			record.ZoneLabel = quote.Zone.Label
		}
	}

	for _, line := range lines {
		item := models.OrderItem{
			ItemID:      line.Item.ID,
			Number:      line.Item.Number,
			Name:        line.Item.Name,
			Quantity:    line.Quantity,
			UnitPrice:   UnitPrice(line.Item, line.Selection),
			ExtrasPrice: ExtrasPrice(line.Selection),
			LineTotal:   LineTotal(line),
			Ingredients: line.Selection.Ingredients,
			Extras:      line.Selection.Extras,
			PastaType:   line.Selection.PastaType,
			Sauce:       line.Selection.Sauce,
			Exclusions:  line.Selection.Exclusions,
			SideDish:    line.Selection.SideDish,
		}
		if line.Selection.Size != nil {
			item.Size = line.Selection.Size.Name
			if size, ok := line.Item.FindSize(line.Selection.Size.Name); ok && size.Description != "" {
				item.Size += " - " + size.Description
			}
		}
		record.Items = append(record.Items, item)
	}
	return record
}

func orderTypeLabel(t models.OrderType) string {
	if t == models.OrderTypeDelivery {
		return "Lieferung"
	}
	return "Abholung"
}

func timeLabel(tc models.TimeChoice) string {
	if tc.Mode == models.TimeSpecific && tc.At != "" {
		return fmt.Sprintf("Um %s Uhr", tc.At)
	}
	return "So schnell wie möglich"
}

func formatOrderItem(item models.OrderItem, esc func(string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx ", item.Quantity)
	if item.Number > 0 {
		fmt.Fprintf(&b, "Nr. %d ", item.Number)
	}
	b.WriteString(esc(item.Name))

	if item.Size != "" {
		fmt.Fprintf(&b, " (%s)", esc(item.Size))
	}
	if item.PastaType != "" {
		fmt.Fprintf(&b, " - Nudelsorte: %s", esc(item.PastaType))
	}
	if item.Sauce != "" {
		fmt.Fprintf(&b, " - Soße: %s", esc(item.Sauce))
	}
	if len(item.Exclusions) > 0 {
		fmt.Fprintf(&b, " - Salat: %s", esc(strings.Join(item.Exclusions, ", ")))
	}
	if item.SideDish != "" {
		fmt.Fprintf(&b, " - Beilage: %s", esc(item.SideDish))
	}
	if len(item.Ingredients) > 0 {
		fmt.Fprintf(&b, " - Zutaten: %s", esc(strings.Join(item.Ingredients, ", ")))
	}
	if len(item.Extras) > 0 {
		fmt.Fprintf(&b, " - Extras: %s (+%s€)", esc(strings.Join(item.Extras, ", ")), item.ExtrasPrice.Format())
	}
	fmt.Fprintf(&b, " = %s €", item.LineTotal.Format())
	return b.String()
}

// FormatOrderMessage renders the order as the text sent to the restaurant.
func FormatOrderMessage(record models.OrderRecord) string {
	return FormatOrderMessageWith(record, func(s string) string { return s })
}

// FormatOrderMessageWith renders the same text, passing every customer or
// menu supplied value through esc. The *bold* labels are left as markup.
func FormatOrderMessageWith(record models.OrderRecord, esc func(string) string) string {
	var b strings.Builder

	b.WriteString("🍕 *Neue Bestellung*\n\n")
	fmt.Fprintf(&b, "👤 *Kunde:* %s\n", esc(record.CustomerName))
	fmt.Fprintf(&b, "📞 *Telefon:* %s\n", esc(record.Phone))
	fmt.Fprintf(&b, "📦 *Art:* %s\n", orderTypeLabel(record.OrderType))

	if record.OrderType == models.OrderTypeDelivery && record.Address != nil {
		fmt.Fprintf(&b, "📍 *Adresse:* %s %s, %s\n", esc(record.Address.Street), esc(record.Address.HouseNumber), esc(record.Address.Postcode))
		fmt.Fprintf(&b, "🗺️ *Gebiet:* %s\n", esc(record.ZoneLabel))
	}
	fmt.Fprintf(&b, "⏰ *Zeit:* %s\n\n", timeLabel(record.Time))

	b.WriteString("🛒 *Bestellung:*\n")
	for _, item := range record.Items {
		fmt.Fprintf(&b, "• %s\n", formatOrderItem(item, esc))
	}

	fmt.Fprintf(&b, "\n💰 *Zwischensumme:* %s €\n", record.Subtotal.Format())
	if record.DeliveryFee > 0 {
		fmt.Fprintf(&b, "🚗 *Liefergebühr:* %s €\n", record.DeliveryFee.Format())
	}
	fmt.Fprintf(&b, "💳 *Gesamtbetrag:* %s €\n", record.Total.Format())

	if record.Note != "" {
		fmt.Fprintf(&b, "\n📝 *Anmerkung:* %s", esc(record.Note))
	}
	return b.String()
}

// WhatsAppURL builds the click-to-chat link with the message prefilled.
func WhatsAppURL(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", strings.TrimPrefix(number, "+"), text)
}
