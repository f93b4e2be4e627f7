package models

import "time"

// Selection is the customer's configuration of one menu item.
type Selection struct {
	Size        *Size    `json:"size,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Extras      []string `json:"extras,omitempty"`
	PastaType   string   `json:"pasta_type,omitempty"`
	Sauce       string   `json:"sauce,omitempty"`
	Exclusions  []string `json:"exclusions,omitempty"`
	SideDish    string   `json:"side_dish,omitempty"`
}

// Clone returns a deep copy so callers can mutate slices freely.
func (s Selection) Clone() Selection {
	out := s
	if s.Size != nil {
		size := *s.Size
		out.Size = &size
	}
	out.Ingredients = cloneStrings(s.Ingredients)
	out.Extras = cloneStrings(s.Extras)
	out.Exclusions = cloneStrings(s.Exclusions)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

type CartLine struct {
	Key       string    `json:"key"`
	Item      MenuItem  `json:"item"`
	Selection Selection `json:"selection"`
	Quantity  int       `json:"quantity"`
}

type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartLineView struct {
	Key       string    `json:"key"`
	ItemID    int       `json:"item_id"`
	Number    int       `json:"number,omitempty"`
	Name      string    `json:"name"`
	Selection Selection `json:"selection"`
	Quantity  int       `json:"quantity"`
	UnitPrice Cents     `json:"unit_price"`
	LineTotal Cents     `json:"line_total"`
}

type CartView struct {
	ID        string         `json:"id"`
	Lines     []CartLineView `json:"lines"`
	ItemCount int            `json:"item_count"`
	Subtotal  Cents          `json:"subtotal"`
	UpdatedAt time.Time      `json:"updated_at"`
}
