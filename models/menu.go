package models

type Size struct {
	Name        string `json:"name"`
	Price       Cents  `json:"price"`
	Description string `json:"description,omitempty"`
}

type MenuItem struct {
	ID              int    `json:"id"`
	Number          int    `json:"number,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category"`
	Price           Cents  `json:"price"`
	Sizes           []Size `json:"sizes,omitempty"`
	Allergens       string `json:"allergens,omitempty"`
	IsPizza         bool   `json:"is_pizza,omitempty"`
	IsBuildYourOwn  bool   `json:"is_build_your_own,omitempty"`
	IsPasta         bool   `json:"is_pasta,omitempty"`
	IsMeatSelection bool   `json:"is_meat_selection,omitempty"`
	IsBeerSelection bool   `json:"is_beer_selection,omitempty"`
	IsAgeRestricted bool   `json:"is_age_restricted,omitempty"`
	OffersSauce     bool   `json:"offers_sauce,omitempty"`
}

func (m MenuItem) RequiresSize() bool {
	return len(m.Sizes) > 0
}

// AllowsExtras reports whether paid extras can be added to the item.
func (m MenuItem) AllowsExtras() bool {
	return m.IsPizza || m.IsBuildYourOwn
}

func (m MenuItem) FindSize(name string) (Size, bool) {
	for _, s := range m.Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}

type MenuSection struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Items       []MenuItem `json:"items"`
}
