package services

import (
	"testing"

	"doener-shop/models"
)

func TestUnitPriceUsesSizeAndExtras(t *testing.T) {
	pizza := mustItem(t, 649)

	tests := []struct {
		name string
		sel  models.Selection
		want models.Cents
	}{
		{"medium plain", models.Selection{Size: sizeOf("Medium")}, 890},
		{"family with two extras", models.Selection{Size: sizeOf("Family"), Extras: []string{"Mais", "Oliven"}}, 1990},
		{"unknown size falls back to base", models.Selection{Size: sizeOf("XXL")}, 890},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitPrice(pizza, tt.sel); got != tt.want {
				t.Fatalf("UnitPrice = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineTotalAndSubtotal(t *testing.T) {
	lines := []models.CartLine{
		{Item: mustItem(t, 649), Selection: models.Selection{Size: sizeOf("Large"), Extras: []string{"Mais"}}, Quantity: 3},
		{Item: mustItem(t, 100), Quantity: 2},
	}

	if got := LineTotal(lines[0]); got != 3270 {
		t.Fatalf("LineTotal = %d, want 3270", got)
	}
	if got := Subtotal(lines); got != 3670 {
		t.Fatalf("Subtotal = %d, want 3670", got)
	}
}

func TestDeliveryFeeOnlyForDeliveryWithZone(t *testing.T) {
	zone := &models.DeliveryZone{Key: "banteln", Fee: 250}

	if got := DeliveryFee(models.OrderTypePickup, zone); got != 0 {
		t.Errorf("pickup fee = %d", got)
	}
	if got := DeliveryFee(models.OrderTypeDelivery, nil); got != 0 {
		t.Errorf("delivery without zone fee = %d", got)
	}
	if got := GrandTotal(2500, models.OrderTypeDelivery, zone); got != 2750 {
		t.Errorf("GrandTotal = %d, want 2750", got)
	}
}

func TestUnsizedPizzaPricesFromItemPrice(t *testing.T) {
	pizza := models.MenuItem{ID: 9001, Name: "Pizza Hausmacher", Price: 850, IsPizza: true}

	tests := []struct {
		name      string
		extras    []string
		quantity  int
		unit      models.Cents
		lineTotal models.Cents
	}{
		{"plain", nil, 1, 850, 850},
		{"two extras", []string{"Mais", "Oliven"}, 1, 1050, 1050},
		{"two extras times three", []string{"Mais", "Oliven"}, 3, 1050, 3150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := models.CartLine{Item: pizza, Selection: models.Selection{Extras: tt.extras}, Quantity: tt.quantity}
			if got := UnitPrice(line.Item, line.Selection); got != tt.unit {
				t.Errorf("UnitPrice = %d, want %d", got, tt.unit)
			}
			if got := LineTotal(line); got != tt.lineTotal {
				t.Errorf("LineTotal = %d, want %d", got, tt.lineTotal)
			}
		})
	}
}

func TestGrandTotalIgnoresZoneForPickup(t *testing.T) {
	lines := []models.CartLine{
		{Item: models.MenuItem{ID: 1, Name: "Döner Kebap", Price: 700}, Quantity: 2},
		{Item: models.MenuItem{ID: 2, Name: "Ayran", Price: 220}, Quantity: 2},
	}
	subtotal := Subtotal(lines)
	if subtotal != 1840 {
		t.Fatalf("Subtotal = %d, want 1840", subtotal)
	}

	zones := []*models.DeliveryZone{
		nil,
		{Key: "banteln", MinOrder: 2500, Fee: 250},
	}
	for _, zone := range zones {
		if got := GrandTotal(subtotal, models.OrderTypePickup, zone); got != 1840 {
			t.Errorf("pickup GrandTotal with zone %v = %d, want 1840", zone, got)
		}
	}

	fifteen := &models.DeliveryZone{Key: "gronau", MinOrder: 1500, Fee: 200}
	if got := GrandTotal(1600, models.OrderTypeDelivery, fifteen); got != 1800 {
		t.Errorf("delivery GrandTotal = %d, want 1800", got)
	}
}
