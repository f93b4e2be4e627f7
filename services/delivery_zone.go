package services

import (
	"fmt"

	"doener-shop/models"
)

var deliveryZones = []models.DeliveryZone{
	{Key: "lutter", Label: "Lutter am Barenberge", MinOrder: 0, Fee: 0},
	{Key: "banteln", Label: "Banteln", MinOrder: 2500, Fee: 250},
	{Key: "barfelde", Label: "Barfelde", MinOrder: 2000, Fee: 250},
	{Key: "betheln", Label: "Betheln", MinOrder: 2500, Fee: 300},
	{Key: "brueggen", Label: "Brüggen", MinOrder: 3500, Fee: 300},
	{Key: "deinsen", Label: "Deinsen", MinOrder: 3500, Fee: 400},
	{Key: "duingen", Label: "Duingen", MinOrder: 4000, Fee: 400},
	{Key: "dunsen-gime", Label: "Dunsen (Gime)", MinOrder: 3000, Fee: 300},
	{Key: "eime", Label: "Eime", MinOrder: 2500, Fee: 300},
	{Key: "eitzum", Label: "Eitzum", MinOrder: 2500, Fee: 300},
	{Key: "elze", Label: "Elze", MinOrder: 3500, Fee: 400},
	{Key: "gronau", Label: "Gronau", MinOrder: 1500, Fee: 150},
	{Key: "gronau-doetzum", Label: "Gronau Dötzum", MinOrder: 2000, Fee: 200},
	{Key: "gronau-eddighausen", Label: "Gronau Eddighausen", MinOrder: 2000, Fee: 250},
	{Key: "haus-escherde", Label: "Haus Escherde", MinOrder: 2500, Fee: 300},
	{Key: "heinum", Label: "Heinum", MinOrder: 2500, Fee: 300},
	{Key: "kolonie-godenau", Label: "Kolonie Godenau", MinOrder: 4000, Fee: 400},
	{Key: "mehle-elze", Label: "Mehle (Elze)", MinOrder: 3500, Fee: 400},
	{Key: "nienstedt", Label: "Nienstedt", MinOrder: 3500, Fee: 400},
	{Key: "nordstemmen", Label: "Nordstemmen", MinOrder: 3500, Fee: 400},
	{Key: "rheden-elze", Label: "Rheden (Elze)", MinOrder: 2500, Fee: 300},
	{Key: "sibesse", Label: "Sibesse", MinOrder: 4000, Fee: 400},
	{Key: "sorsum-elze", Label: "Sorsum (Elze)", MinOrder: 3500, Fee: 400},
	{Key: "wallensted", Label: "Wallensted", MinOrder: 2500, Fee: 300},
}

// ZoneTable is the static list of delivery areas.
type ZoneTable struct {
	zones []models.DeliveryZone
	byKey map[string]models.DeliveryZone
}

func NewZoneTable(zones []models.DeliveryZone) *ZoneTable {
	t := &ZoneTable{byKey: make(map[string]models.DeliveryZone, len(zones))}
	for _, z := range zones {
		t.zones = append(t.zones, z)
		t.byKey[z.Key] = z
	}
	return t
}

func DefaultZoneTable() *ZoneTable {
	return NewZoneTable(deliveryZones)
}

func (t *ZoneTable) Zones() []models.DeliveryZone {
	out := make([]models.DeliveryZone, len(t.zones))
	copy(out, t.zones)
	return out
}

func (t *ZoneTable) Find(key string) (models.DeliveryZone, bool) {
	z, ok := t.byKey[key]
	return z, ok
}

func MinOrderMessage(zone models.DeliveryZone) string {
	return fmt.Sprintf("Mindestbestellwert für %s: %s €", zone.Label, zone.MinOrder.Format())
}

const zoneRequiredMessage = "Bitte wählen Sie ein Liefergebiet"

// Quote prices the order for display. A delivery order without a zone or
// below the zone minimum is returned with CanOrder false; only an unknown
// zone key is an error.
func (t *ZoneTable) Quote(orderType models.OrderType, zoneKey string, subtotal models.Cents) (models.Quote, error) {
	q := models.Quote{
		OrderType: orderType,
		Subtotal:  subtotal,
		Total:     subtotal,
		CanOrder:  true,
	}

	switch orderType {
	case models.OrderTypePickup:
		return q, nil
	case models.OrderTypeDelivery:
	default:
		return q, validationErr("order_type", "unknown order type %q", orderType)
	}

	if zoneKey == "" {
		q.CanOrder = false
		q.Message = zoneRequiredMessage
		return q, nil
	}

	zone, ok := t.Find(zoneKey)
	if !ok {
		return q, validationErr("zone", "unknown delivery zone %q", zoneKey)
	}

	q.Zone = &zone
	q.DeliveryFee = DeliveryFee(orderType, &zone)
	q.Total = GrandTotal(subtotal, orderType, &zone)
	if subtotal < zone.MinOrder {
		q.CanOrder = false
		q.Message = MinOrderMessage(zone)
	}
	return q, nil
}

// Gate turns a blocked quote into a validation error.
func Gate(q models.Quote) error {
	if q.CanOrder {
		return nil
	}
	if q.Zone == nil {
		return validationErr("zone", "%s", q.Message)
	}
	return validationErr("subtotal", "%s", q.Message)
}
