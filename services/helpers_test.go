package services

import (
	"testing"
	"time"

	"doener-shop/catalog"
	"doener-shop/models"
	"doener-shop/repositories"
)

var testCatalog = catalog.Default()

func testEngine() *ConfigEngine {
	return NewConfigEngine(testCatalog)
}

func mustItem(t *testing.T, id int) models.MenuItem {
	t.Helper()
	item, ok := testCatalog.Find(id)
	if !ok {
		t.Fatalf("menu item %d missing", id)
	}
	return item
}

func apply(t *testing.T, e *ConfigEngine, state models.ConfiguratorState, events ...Event) models.ConfiguratorState {
	t.Helper()
	for _, ev := range events {
		next, err := e.Transition(state, ev)
		if err != nil {
			t.Fatalf("%s(%q) at step %s: %v", ev.Type, ev.Value, state.Step, err)
		}
		state = next
	}
	return state
}

func newTestCartService() *CartService {
	return NewCartService(repositories.NewCartStore(nil, time.Hour), testCatalog, testEngine())
}

func sizeOf(name string) *models.Size {
	return &models.Size{Name: name}
}
