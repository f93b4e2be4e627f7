package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"doener-shop/models"
)

const (
	emptyKeyPart = "none"

	// MaxLineQuantity caps a single cart line.
	MaxLineQuantity = 99
)

// LineKey identifies a configured item in the cart. Multi-select fields are
// sorted so that selection order never produces a second line.
func LineKey(itemID int, sel models.Selection) string {
	size := "default"
	if sel.Size != nil && strings.TrimSpace(sel.Size.Name) != "" {
		size = normalizePart(sel.Size.Name)
	}

	parts := []string{
		strconv.Itoa(itemID),
		size,
		joinSorted(sel.Ingredients),
		joinSorted(sel.Extras),
		single(sel.PastaType),
		joinSorted(strings.Split(sel.Sauce, ",")),
		joinSorted(sel.Exclusions),
		single(sel.SideDish),
	}
	return strings.Join(parts, "|")
}

func normalizePart(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func single(s string) string {
	if v := normalizePart(s); v != "" {
		return v
	}
	return emptyKeyPart
}

func joinSorted(values []string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := normalizePart(v); n != "" {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return emptyKeyPart
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}

// Cart is one customer's collection of configured items. Lines never share
// a key; repeated adds raise the quantity instead.
type Cart struct {
	id        string
	lines     []models.CartLine
	updatedAt time.Time
}

func NewCart(id string) *Cart {
	return &Cart{id: id}
}

func RestoreCart(data models.Cart) *Cart {
	c := &Cart{id: data.ID, updatedAt: data.UpdatedAt}
	for _, line := range data.Lines {
		if line.Quantity <= 0 {
			continue
		}
		line.Key = LineKey(line.Item.ID, line.Selection)
		c.merge(line)
	}
	return c
}

func (c *Cart) ID() string {
	return c.id
}

func (c *Cart) merge(line models.CartLine) {
	for i := range c.lines {
		if c.lines[i].Key == line.Key {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

func (c *Cart) find(key string) int {
	for i := range c.lines {
		if c.lines[i].Key == key {
			return i
		}
	}
	return -1
}

func (c *Cart) touch() {
	c.updatedAt = time.Now()
}

// AddItem adds one unit of the configured item and returns the resulting line.
// A line already at MaxLineQuantity is left unchanged.
func (c *Cart) AddItem(item models.MenuItem, sel models.Selection) models.CartLine {
	key := LineKey(item.ID, sel)
	defer c.touch()

	if i := c.find(key); i >= 0 {
		if c.lines[i].Quantity < MaxLineQuantity {
			c.lines[i].Quantity++
		}
		return c.lines[i]
	}

	line := models.CartLine{Key: key, Item: item, Selection: sel.Clone(), Quantity: 1}
	c.lines = append(c.lines, line)
	return line
}

// RemoveItem deletes the matching line. Missing lines are ignored.
func (c *Cart) RemoveItem(itemID int, sel models.Selection) bool {
	i := c.find(LineKey(itemID, sel))
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.touch()
	return true
}

// UpdateQuantity sets the line's quantity; zero or less removes it.
// Quantities above MaxLineQuantity are refused.
func (c *Cart) UpdateQuantity(itemID int, sel models.Selection, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveItem(itemID, sel)
	}
	if quantity > MaxLineQuantity {
		return false
	}
	i := c.find(LineKey(itemID, sel))
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = quantity
	c.touch()
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
	c.touch()
}

func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

func (c *Cart) Subtotal() models.Cents {
	return Subtotal(c.lines)
}

func (c *Cart) Snapshot() models.Cart {
	return models.Cart{ID: c.id, Lines: c.Lines(), UpdatedAt: c.updatedAt}
}

func (c *Cart) View() models.CartView {
	view := models.CartView{
		ID:        c.id,
		Lines:     []models.CartLineView{},
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
		UpdatedAt: c.updatedAt,
	}
	for _, line := range c.lines {
		view.Lines = append(view.Lines, models.CartLineView{
			Key:       line.Key,
			ItemID:    line.Item.ID,
			Number:    line.Item.Number,
			Name:      line.Item.Name,
			Selection: line.Selection,
			Quantity:  line.Quantity,
			UnitPrice: UnitPrice(line.Item, line.Selection),
			LineTotal: LineTotal(line),
		})
	}
	return view
}

// QuantityOf returns the quantity of the matching line, or zero.
func (c *Cart) QuantityOf(itemID int, sel models.Selection) int {
	if i := c.find(LineKey(itemID, sel)); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}
