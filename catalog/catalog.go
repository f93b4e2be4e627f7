package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"doener-shop/models"
)

var ErrDuplicateItem = errors.New("duplicate menu item id")

// Catalog is the immutable menu. It is built once at startup and shared
// read-only between requests.
type Catalog struct {
	sections []models.MenuSection
	byID     map[int]models.MenuItem
	rules    []SauceRule
}

func New(sections []models.MenuSection, rules []SauceRule) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[int]models.MenuItem),
		rules: rules,
	}

	for _, section := range sections {
		items := make([]models.MenuItem, len(section.Items))
		for i, item := range section.Items {
			if _, exists := c.byID[item.ID]; exists {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateItem, item.ID)
			}
			item.Category = section.Key
			items[i] = item
			c.byID[item.ID] = item
		}
		section.Items = items
		c.sections = append(c.sections, section)
	}

	return c, nil
}

// Default returns the restaurant's menu with the standard sauce rules.
func Default() *Catalog {
	c, err := New(DefaultSections(), DefaultSauceRules())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Sections() []models.MenuSection {
	return c.sections
}

func (c *Catalog) Section(key string) (models.MenuSection, bool) {
	for _, s := range c.sections {
		if s.Key == key {
			return s, true
		}
	}
	return models.MenuSection{}, false
}

func (c *Catalog) Items() []models.MenuItem {
	items := []models.MenuItem{}
	for _, s := range c.sections {
		items = append(items, s.Items...)
	}
	return items
}

func (c *Catalog) Find(id int) (models.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Search matches the query against name, description and display number.
func (c *Catalog) Search(query string) []models.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Items()
	}

	results := []models.MenuItem{}
	for _, item := range c.Items() {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			(item.Number > 0 && strconv.Itoa(item.Number) == q) {
			results = append(results, item)
		}
	}
	return results
}

// SauceRule returns the first sauce rule matching the item.
func (c *Catalog) SauceRule(item models.MenuItem) SauceRule {
	return matchRule(c.rules, item)
}
