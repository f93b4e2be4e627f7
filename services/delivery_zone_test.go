package services

import (
	"testing"

	"doener-shop/models"
)

func TestQuotePickupHasNoFeeOrMinimum(t *testing.T) {
	q, err := DefaultZoneTable().Quote(models.OrderTypePickup, "banteln", 500)
	if err != nil {
		t.Fatal(err)
	}
	if !q.CanOrder || q.DeliveryFee != 0 || q.Total != 500 || q.Zone != nil {
		t.Fatalf("quote = %+v", q)
	}
}

func TestQuoteDelivery(t *testing.T) {
	zones := DefaultZoneTable()

	tests := []struct {
		name     string
		zone     string
		subtotal models.Cents
		canOrder bool
		fee      models.Cents
		message  string
	}{
		{"no zone chosen", "", 3000, false, 0, zoneRequiredMessage},
		{"below minimum", "banteln", 2499, false, 250, "Mindestbestellwert für Banteln: 25,00 €"},
		{"at minimum", "banteln", 2500, true, 250, ""},
		{"home zone without minimum", "lutter", 100, true, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := zones.Quote(models.OrderTypeDelivery, tt.zone, tt.subtotal)
			if err != nil {
				t.Fatal(err)
			}
			if q.CanOrder != tt.canOrder || q.DeliveryFee != tt.fee || q.Message != tt.message {
				t.Fatalf("quote = %+v", q)
			}
			if q.Total != tt.subtotal+tt.fee {
				t.Fatalf("total = %d", q.Total)
			}
		})
	}
}

func TestQuoteUnknownZone(t *testing.T) {
	_, err := DefaultZoneTable().Quote(models.OrderTypeDelivery, "atlantis", 5000)
	wantValidation(t, err, "zone")
}

func TestGate(t *testing.T) {
	zones := DefaultZoneTable()

	ok, _ := zones.Quote(models.OrderTypeDelivery, "banteln", 3000)
	if err := Gate(ok); err != nil {
		t.Fatalf("Gate(ok) = %v", err)
	}

	noZone, _ := zones.Quote(models.OrderTypeDelivery, "", 3000)
	wantValidation(t, Gate(noZone), "zone")

	low, _ := zones.Quote(models.OrderTypeDelivery, "banteln", 1000)
	wantValidation(t, Gate(low), "subtotal")
}

func TestZoneTableHasAllZones(t *testing.T) {
	zones := DefaultZoneTable().Zones()
	if len(zones) != 24 {
		t.Fatalf("zones = %d, want 24", len(zones))
	}
	seen := map[string]bool{}
	for _, z := range zones {
		if seen[z.Key] {
			t.Fatalf("duplicate zone %q", z.Key)
		}
		seen[z.Key] = true
	}
}
