package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"doener-shop/models"
	"doener-shop/repositories"
)

func newTestConfigurator() (*ConfiguratorService, *CartService) {
	carts := newTestCartService()
	sessions := repositories.NewSessionStore(nil, time.Hour)
	return NewConfiguratorService(sessions, testCatalog, testEngine(), carts), carts
}

func TestConfiguratorServiceAddsFinishedItemToCart(t *testing.T) {
	ctx := context.Background()
	svc, carts := newTestConfigurator()

	view, err := svc.Open(ctx, "c1", 529)
	if err != nil {
		t.Fatal(err)
	}
	id := view.SessionID
	if id == "" || view.Step != models.StepMeat {
		t.Fatalf("open view = %+v", view)
	}

	for _, ev := range []Event{
		{Type: EventNext},
		{Type: EventToggleSauce, Value: "Tzatziki"},
		{Type: EventNext},
	} {
		if _, err := svc.Apply(ctx, "c1", id, ev); err != nil {
			t.Fatalf("%s: %v", ev.Type, err)
		}
	}

	view, err = svc.Apply(ctx, "c1", id, Event{Type: EventNext})
	if err != nil {
		t.Fatal(err)
	}
	if view.Step != models.StepDone || view.Cart == nil || view.Cart.ItemCount != 1 {
		t.Fatalf("done view = %+v", view)
	}

	cart, _ := carts.Get(ctx, "c1")
	if cart.Lines[0].Selection.Sauce != "Tzatziki" {
		t.Fatalf("cart line = %+v", cart.Lines[0])
	}

	if _, err := svc.Get(ctx, "c1", id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("finished session still present: %v", err)
	}
}

func TestConfiguratorServiceKeepsStateOnValidationError(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestConfigurator()

	view, _ := svc.Open(ctx, "c1", 649)
	_, err := svc.Apply(ctx, "c1", view.SessionID, Event{Type: EventNext})
	wantValidation(t, err, "size")

	if _, err := svc.Apply(ctx, "c1", view.SessionID, Event{Type: EventSelectSize, Value: "Medium"}); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Get(ctx, "c1", view.SessionID)
	if err != nil || got.Selection.Size == nil || got.Selection.Size.Name != "Medium" {
		t.Fatalf("session = %+v, %v", got, err)
	}
}

func TestConfiguratorServiceCancelAndOwnership(t *testing.T) {
	ctx := context.Background()
	svc, carts := newTestConfigurator()

	view, _ := svc.Open(ctx, "c1", 593)
	if _, err := svc.Get(ctx, "someone-else", view.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("foreign cart err = %v", err)
	}

	if _, err := svc.Apply(ctx, "c1", view.SessionID, Event{Type: EventCancel}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, "c1", view.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("cancelled session still present: %v", err)
	}
	if cart, _ := carts.Get(ctx, "c1"); cart.ItemCount != 0 {
		t.Fatalf("cancel touched the cart: %+v", cart)
	}

	if _, err := svc.Open(ctx, "c1", 12345); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("unknown item err = %v", err)
	}
}

func TestConfiguratorServiceClose(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestConfigurator()

	view, _ := svc.Open(ctx, "c1", 677)
	if err := svc.Close(ctx, "c1", view.SessionID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Close(ctx, "c1", view.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("second close err = %v", err)
	}
}
