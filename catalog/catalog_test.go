package catalog

import (
	"errors"
	"testing"

	"doener-shop/models"
)

func TestDefaultCatalogHasUniqueIDs(t *testing.T) {
	c := Default()
	seen := map[int]bool{}
	for _, item := range c.Items() {
		if seen[item.ID] {
			t.Fatalf("duplicate id %d", item.ID)
		}
		seen[item.ID] = true
		if item.Category == "" {
			t.Errorf("item %d has no category", item.ID)
		}
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	sections := []models.MenuSection{
		{Key: "a", Items: []models.MenuItem{{ID: 1, Name: "x"}}},
		{Key: "b", Items: []models.MenuItem{{ID: 1, Name: "y"}}},
	}
	_, err := New(sections, DefaultSauceRules())
	if !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("err = %v, want ErrDuplicateItem", err)
	}
}

func TestFindAndSearch(t *testing.T) {
	c := Default()

	item, ok := c.Find(532)
	if !ok || item.Number != SideDishItemNumber || !item.IsMeatSelection {
		t.Fatalf("Find(532) = %+v, %v", item, ok)
	}
	if _, ok := c.Find(999999); ok {
		t.Fatal("Find(999999) should miss")
	}

	byNumber := c.Search("26")
	if len(byNumber) != 1 || byNumber[0].Name != "Pizza Margherita" {
		t.Errorf("Search(26) = %+v", byNumber)
	}

	byName := c.Search("falafel")
	if len(byName) != 3 {
		t.Errorf("Search(falafel) returned %d items, want 3", len(byName))
	}
}

func TestSauceRulePrecedence(t *testing.T) {
	c := Default()

	tests := []struct {
		itemID    int
		wantRule  string
		wantMulti bool
	}{
		{562, "dressing", false},
		{586, "pommes", true},
		{585, "nuggets", true},
		{587, "nuggets", true},
		{580, "burger", true},
		{529, "doener", true},
		{537, "doener", true},
		{520, "vegetarian", false},
		{673, "pizzarolls", false},
		{534, "grill", false},
		{626, "default", false},
	}

	for _, tt := range tests {
		item, ok := c.Find(tt.itemID)
		if !ok {
			t.Fatalf("item %d missing", tt.itemID)
		}
		rule := c.SauceRule(item)
		if rule.Name != tt.wantRule {
			t.Errorf("item %d: rule = %s, want %s", tt.itemID, rule.Name, tt.wantRule)
		}
		if rule.MultiSelect != tt.wantMulti {
			t.Errorf("item %d: multi = %v, want %v", tt.itemID, rule.MultiSelect, tt.wantMulti)
		}
	}
}

func TestBurgerSaucesSubstituted(t *testing.T) {
	c := Default()
	item, _ := c.Find(580)
	rule := c.SauceRule(item)

	want := []string{"Burger Sauce", "Chili-Sauce", "Ketchup", "Mayonnaise", NoSauce}
	if len(rule.Options) != len(want) {
		t.Fatalf("options = %v, want %v", rule.Options, want)
	}
	for i := range want {
		if rule.Options[i] != want[i] {
			t.Errorf("options[%d] = %s, want %s", i, rule.Options[i], want[i])
		}
	}
}

func TestVisibleSaucesCollapse(t *testing.T) {
	c := Default()
	item, _ := c.Find(529)
	rule := c.SauceRule(item)

	if got := len(rule.Visible(false)); got != CollapsedSauceCount {
		t.Errorf("collapsed visible = %d, want %d", got, CollapsedSauceCount)
	}
	if got := len(rule.Visible(true)); got != len(SauceTypes) {
		t.Errorf("expanded visible = %d, want %d", got, len(SauceTypes))
	}

	veg, _ := c.Find(520)
	if got := len(c.SauceRule(veg).Visible(false)); got != len(SauceTypes) {
		t.Errorf("non-collapsed rule shows %d, want all", got)
	}
}

func TestNuggetsOfferFullSauceList(t *testing.T) {
	c := Default()
	for _, id := range []int{585, 587} {
		item, _ := c.Find(id)
		rule := c.SauceRule(item)
		if len(rule.Options) != len(SauceTypes) || !Contains(rule.Options, "Tzatziki") {
			t.Errorf("item %d options = %v", id, rule.Options)
		}
	}

	pommes, _ := c.Find(586)
	if got := c.SauceRule(pommes).Options; Contains(got, "Tzatziki") {
		t.Errorf("pommes options = %v", got)
	}
}
