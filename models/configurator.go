package models

import "time"

type ConfigStep string

const (
	StepOptions    ConfigStep = "options"
	StepMeat       ConfigStep = "meat"
	StepSauce      ConfigStep = "sauce"
	StepExclusions ConfigStep = "exclusions"
	StepSideDish   ConfigStep = "sidedish"
	StepAgeConfirm ConfigStep = "age_confirm"
	StepDone       ConfigStep = "done"
	StepCancelled  ConfigStep = "cancelled"
)

func (s ConfigStep) Terminal() bool {
	return s == StepDone || s == StepCancelled
}

// ConfiguratorState is everything collected while a customer configures one
// menu item. It is stored between requests under SessionID.
type ConfiguratorState struct {
	SessionID     string     `json:"session_id"`
	CartID        string     `json:"cart_id"`
	Item          MenuItem   `json:"item"`
	Step          ConfigStep `json:"step"`
	Size          *Size      `json:"size,omitempty"`
	Ingredients   []string   `json:"ingredients,omitempty"`
	Extras        []string   `json:"extras,omitempty"`
	PastaType     string     `json:"pasta_type,omitempty"`
	Sauce         string     `json:"sauce,omitempty"`
	Sauces        []string   `json:"sauces,omitempty"`
	Beer          string     `json:"beer,omitempty"`
	MeatType      string     `json:"meat_type,omitempty"`
	Exclusions    []string   `json:"exclusions,omitempty"`
	SideDish      string     `json:"side_dish,omitempty"`
	ShowAllSauces bool       `json:"show_all_sauces,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (s ConfiguratorState) Clone() ConfiguratorState {
	out := s
	if s.Size != nil {
		size := *s.Size
		out.Size = &size
	}
	out.Ingredients = cloneStrings(s.Ingredients)
	out.Extras = cloneStrings(s.Extras)
	out.Sauces = cloneStrings(s.Sauces)
	out.Exclusions = cloneStrings(s.Exclusions)
	return out
}

type OptionGroup struct {
	Name        string   `json:"name"`
	Options     []string `json:"options"`
	Selected    []string `json:"selected"`
	MultiSelect bool     `json:"multi_select"`
	Required    bool     `json:"required"`
	Max         int      `json:"max,omitempty"`
	HasMore     bool     `json:"has_more,omitempty"`
}

type ConfiguratorView struct {
	SessionID string        `json:"session_id,omitempty"`
	Item      MenuItem      `json:"item"`
	Step      ConfigStep    `json:"step"`
	Sizes     []Size        `json:"sizes,omitempty"`
	Groups    []OptionGroup `json:"groups"`
	Selection Selection     `json:"selection"`
	UnitPrice Cents         `json:"unit_price"`
	CanGoBack bool          `json:"can_go_back"`
	Cart      *CartView     `json:"cart,omitempty"`
}
