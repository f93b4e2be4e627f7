package catalog

import (
	"sort"

	"doener-shop/models"
)

// SauceRule maps a class of menu items to the sauce vocabulary offered for it.
type SauceRule struct {
	Name          string
	Match         func(models.MenuItem) bool
	Options       []string
	MultiSelect   bool
	Collapsed     bool
	MaxSelections int
}

// Visible returns the options shown to the customer. Collapsed rules show
// only the first few until the customer asks for all of them.
func (r SauceRule) Visible(showAll bool) []string {
	if r.Collapsed && !showAll && len(r.Options) > CollapsedSauceCount {
		return r.Options[:CollapsedSauceCount]
	}
	return r.Options
}

func numberBetween(lo, hi int) func(models.MenuItem) bool {
	return func(m models.MenuItem) bool {
		return m.Number >= lo && m.Number <= hi
	}
}

func burgerSauces() []string {
	dropped := []string{"Tzatziki", "Kräutersoße", "Curry Sauce"}
	out := []string{}
	for _, s := range SauceTypes {
		if !Contains(dropped, s) {
			out = append(out, s)
		}
	}
	out = append(out, "Burger Sauce")
	sort.Strings(out)
	return out
}

// DefaultSauceRules is evaluated top to bottom; the first matching rule wins.
// The last rule matches everything.
func DefaultSauceRules() []SauceRule {
	return []SauceRule{
		{
			Name:    "dressing",
			Match:   func(m models.MenuItem) bool { return m.Category == SectionSalads },
			Options: SaladDressings,
		},
		{
			Name:        "pommes",
			Match:       numberBetween(17, 17),
			Options:     PommesSauces,
			MultiSelect: true,
			Collapsed:   true,
		},
		{
			Name:        "nuggets",
			Match:       func(m models.MenuItem) bool { return m.Number == 16 || m.Number == 18 },
			Options:     SauceTypes,
			MultiSelect: true,
			Collapsed:   true,
		},
		{
			Name:        "burger",
			Match:       numberBetween(11, 15),
			Options:     burgerSauces(),
			MultiSelect: true,
			Collapsed:   true,
		},
		{
			Name:          "doener",
			Match:         func(m models.MenuItem) bool { return m.IsMeatSelection },
			Options:       SauceTypes,
			MultiSelect:   true,
			Collapsed:     true,
			MaxSelections: MaxWizardSauces,
		},
		{
			Name:    "vegetarian",
			Match:   numberBetween(19, 25),
			Options: SauceTypes,
		},
		{
			Name:    "pizzarolls",
			Match:   numberBetween(73, 76),
			Options: PizzaRollSauces,
		},
		{
			Name:      "grill",
			Match:     numberBetween(6, 10),
			Options:   SauceTypes,
			Collapsed: true,
		},
		{
			Name:    "default",
			Match:   func(models.MenuItem) bool { return true },
			Options: SauceTypes,
		},
	}
}

func matchRule(rules []SauceRule, item models.MenuItem) SauceRule {
	for _, r := range rules {
		if r.Match(item) {
			return r
		}
	}
	return SauceRule{Name: "default", Options: SauceTypes}
}
