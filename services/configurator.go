package services

import (
	"strings"
	"time"

	"doener-shop/catalog"
	"doener-shop/models"
)

type EventType string

const (
	EventSelectSize       EventType = "select_size"
	EventToggleIngredient EventType = "toggle_ingredient"
	EventToggleExtra      EventType = "toggle_extra"
	EventSelectPasta      EventType = "select_pasta"
	EventSelectSauce      EventType = "select_sauce"
	EventToggleSauce      EventType = "toggle_sauce"
	EventSelectBeer       EventType = "select_beer"
	EventSelectMeat       EventType = "select_meat"
	EventToggleExclusion  EventType = "toggle_exclusion"
	EventSelectSideDish   EventType = "select_side_dish"
	EventShowAllSauces    EventType = "show_all_sauces"
	EventNext             EventType = "next"
	EventBack             EventType = "back"
	EventConfirmAge       EventType = "confirm_age"
	EventDeclineAge       EventType = "decline_age"
	EventCancel           EventType = "cancel"
)

type Event struct {
	Type  EventType
	Value string
}

// ConfigEngine drives the per-item configuration state machine. Transition
// is pure: it never mutates the state it is given.
type ConfigEngine struct {
	catalog *catalog.Catalog
}

func NewConfigEngine(cat *catalog.Catalog) *ConfigEngine {
	return &ConfigEngine{catalog: cat}
}

func isWizard(item models.MenuItem) bool {
	return item.IsMeatSelection
}

func hasSideDishStep(item models.MenuItem) bool {
	return item.IsMeatSelection && item.Number == catalog.SideDishItemNumber
}

// Open starts a fresh configuration for the item.
func (e *ConfigEngine) Open(item models.MenuItem) models.ConfiguratorState {
	state := models.ConfiguratorState{
		Item:      item,
		Step:      models.StepOptions,
		UpdatedAt: time.Now(),
	}

	if isWizard(item) {
		state.Step = models.StepMeat
		state.MeatType = catalog.MeatTypes[0]
	}
	if item.IsPasta {
		state.PastaType = catalog.PastaTypes[0]
	}
	return state
}

// NeedsConfiguration reports whether the item can go straight into the cart
// with an empty selection.
func (e *ConfigEngine) NeedsConfiguration(item models.MenuItem) bool {
	if item.RequiresSize() || item.IsPasta || item.IsMeatSelection ||
		item.IsBeerSelection || item.IsAgeRestricted || item.IsBuildYourOwn {
		return true
	}
	return item.OffersSauce && e.sauceRequired(item)
}

func (e *ConfigEngine) sauceRequired(item models.MenuItem) bool {
	if !item.OffersSauce || isWizard(item) {
		return false
	}
	return !e.catalog.SauceRule(item).MultiSelect
}

func (e *ConfigEngine) Transition(state models.ConfiguratorState, ev Event) (models.ConfiguratorState, error) {
	if state.Step.Terminal() {
		return state, ErrSessionClosed
	}

	next := state.Clone()
	item := state.Item
	rule := e.catalog.SauceRule(item)

	switch ev.Type {
	case EventCancel:
		next.Step = models.StepCancelled

	case EventSelectSize:
		if err := e.expectStep(state, models.StepOptions); err != nil {
			return state, err
		}
		if !item.RequiresSize() {
			return state, validationErr("size", "item has no sizes")
		}
		size, ok := item.FindSize(ev.Value)
		if !ok {
			return state, validationErr("size", "unknown size %q", ev.Value)
		}
		next.Size = &size

	case EventToggleIngredient:
		if err := e.expectStep(state, models.StepOptions); err != nil {
			return state, err
		}
		if !item.IsBuildYourOwn {
			return state, validationErr("ingredients", "item has no ingredient choice")
		}
		if !catalog.Contains(catalog.BuildYourOwnIngredients, ev.Value) {
			return state, validationErr("ingredients", "unknown ingredient %q", ev.Value)
		}
		if catalog.Contains(next.Ingredients, ev.Value) {
			next.Ingredients = without(next.Ingredients, ev.Value)
		} else if len(next.Ingredients) < catalog.MaxIngredients {
			next.Ingredients = append(next.Ingredients, ev.Value)
		} else {
			return state, nil
		}

	case EventToggleExtra:
		if err := e.expectStep(state, models.StepOptions); err != nil {
			return state, err
		}
		if !item.AllowsExtras() {
			return state, validationErr("extras", "item has no extras")
		}
		if !catalog.Contains(catalog.PizzaExtras, ev.Value) {
			return state, validationErr("extras", "unknown extra %q", ev.Value)
		}
		next.Extras = toggle(next.Extras, ev.Value)

	case EventSelectPasta:
		if err := e.expectStep(state, models.StepOptions); err != nil {
			return state, err
		}
		if !item.IsPasta {
			return state, validationErr("pasta_type", "item has no pasta choice")
		}
		if !catalog.Contains(catalog.PastaTypes, ev.Value) {
			return state, validationErr("pasta_type", "unknown pasta type %q", ev.Value)
		}
		next.PastaType = ev.Value

	case EventSelectSauce:
		if err := e.expectStep(state, models.StepOptions); err != nil {
			return state, err
		}
		if !item.OffersSauce || rule.MultiSelect {
			return state, validationErr("sauce", "item has no single sauce choice")
		}
		if !catalog.Contains(rule.Options, ev.Value) {
			return state, validationErr("sauce", "unknown sauce %q", ev.Value)
		}
		next.Sauce = ev.Value

	case EventToggleSauce:
		want := models.StepOptions
		if isWizard(item) {
			want = models.StepSauce
		}
		if err := e.expectStep(state, want); err != nil {
			return state, err
		}
		if !item.OffersSauce || !rule.MultiSelect {
			return state, validationErr("sauce", "item has no multi sauce choice")
		}
		if !catalog.Contains(rule.Options, ev.Value) {
			return state, validationErr("sauce", "unknown sauce %q", ev.Value)
		}
		sauces, accepted := toggleSauce(next.Sauces, ev.Value, rule.MaxSelections)
		if !accepted {
			return state, nil
		}
		next.Sauces = sauces

	case EventShowAllSauces:
		next.ShowAllSauces = true

	case EventSelectBeer:
		if err := e.expectStep(state, models.StepOptions); err != nil {
			return state, err
		}
		if !item.IsBeerSelection {
			return state, validationErr("beer", "item has no beer choice")
		}
		if !catalog.Contains(catalog.BeerTypes, ev.Value) {
			return state, validationErr("beer", "unknown beer %q", ev.Value)
		}
		next.Beer = ev.Value

	case EventSelectMeat:
		if err := e.expectStep(state, models.StepMeat); err != nil {
			return state, err
		}
		if !catalog.Contains(catalog.MeatTypes, ev.Value) {
			return state, validationErr("meat_type", "unknown meat type %q", ev.Value)
		}
		next.MeatType = ev.Value

	case EventToggleExclusion:
		if err := e.expectStep(state, models.StepExclusions); err != nil {
			return state, err
		}
		if !catalog.Contains(catalog.SaladExclusions, ev.Value) {
			return state, validationErr("exclusions", "unknown exclusion %q", ev.Value)
		}
		next.Exclusions = toggle(next.Exclusions, ev.Value)

	case EventSelectSideDish:
		if err := e.expectStep(state, models.StepSideDish); err != nil {
			return state, err
		}
		if !catalog.Contains(catalog.SideDishes, ev.Value) {
			return state, validationErr("side_dish", "unknown side dish %q", ev.Value)
		}
		next.SideDish = ev.Value

	case EventNext:
		step, err := e.advance(next)
		if err != nil {
			return state, err
		}
		next.Step = step

	case EventBack:
		e.retreat(&next)

	case EventConfirmAge:
		if err := e.expectStep(state, models.StepAgeConfirm); err != nil {
			return state, err
		}
		next.Step = models.StepDone

	case EventDeclineAge:
		if err := e.expectStep(state, models.StepAgeConfirm); err != nil {
			return state, err
		}
		next.Step = models.StepCancelled

	default:
		return state, validationErr("event", "unknown event %q", ev.Type)
	}

	next.UpdatedAt = time.Now()
	return next, nil
}

func (e *ConfigEngine) expectStep(state models.ConfiguratorState, want models.ConfigStep) error {
	if state.Step != want {
		return validationErr("event", "not available in step %s", state.Step)
	}
	return nil
}

// advance validates the current step and returns the step that follows it.
func (e *ConfigEngine) advance(state models.ConfiguratorState) (models.ConfigStep, error) {
	item := state.Item

	switch state.Step {
	case models.StepOptions:
		if err := e.validateOptions(state); err != nil {
			return state.Step, err
		}
		return e.afterLastStep(item), nil

	case models.StepMeat:
		if state.MeatType == "" {
			return state.Step, validationErr("meat_type", "meat type is required")
		}
		return models.StepSauce, nil

	case models.StepSauce:
		return models.StepExclusions, nil

	case models.StepExclusions:
		if hasSideDishStep(item) {
			return models.StepSideDish, nil
		}
		return e.afterLastStep(item), nil

	case models.StepSideDish:
		if state.SideDish == "" {
			return state.Step, validationErr("side_dish", "side dish is required")
		}
		return e.afterLastStep(item), nil

	case models.StepAgeConfirm:
		return state.Step, validationErr("age_confirmation", "age confirmation is required")
	}

	return state.Step, validationErr("event", "not available in step %s", state.Step)
}

func (e *ConfigEngine) afterLastStep(item models.MenuItem) models.ConfigStep {
	if item.IsAgeRestricted {
		return models.StepAgeConfirm
	}
	return models.StepDone
}

// retreat moves one step back and discards whatever the left step collected.
func (e *ConfigEngine) retreat(state *models.ConfiguratorState) {
	switch state.Step {
	case models.StepSauce:
		state.Sauces = nil
		state.ShowAllSauces = false
		state.Step = models.StepMeat
	case models.StepExclusions:
		state.Exclusions = nil
		state.Step = models.StepSauce
	case models.StepSideDish:
		state.SideDish = ""
		state.Step = models.StepExclusions
	case models.StepAgeConfirm:
		switch {
		case hasSideDishStep(state.Item):
			state.Step = models.StepSideDish
		case isWizard(state.Item):
			state.Step = models.StepExclusions
		default:
			state.Step = models.StepOptions
		}
	}
}

func (e *ConfigEngine) validateOptions(state models.ConfiguratorState) error {
	item := state.Item

	if item.RequiresSize() && state.Size == nil {
		return validationErr("size", "size is required")
	}
	if item.IsPasta && state.PastaType == "" {
		return validationErr("pasta_type", "pasta type is required")
	}
	if item.IsBeerSelection && state.Beer == "" {
		return validationErr("beer", "beer type is required")
	}
	if e.sauceRequired(item) && state.Sauce == "" {
		return validationErr("sauce", "sauce is required")
	}
	return nil
}

// Selection returns the selection accumulated so far.
func (e *ConfigEngine) Selection(state models.ConfiguratorState) models.Selection {
	item := state.Item
	sel := models.Selection{
		Ingredients: cloneList(state.Ingredients),
		Extras:      cloneList(state.Extras),
		PastaType:   state.PastaType,
		Exclusions:  cloneList(state.Exclusions),
		SideDish:    state.SideDish,
	}
	if state.Size != nil {
		size := *state.Size
		sel.Size = &size
	}

	rule := e.catalog.SauceRule(item)
	switch {
	case item.IsBeerSelection:
		sel.Sauce = state.Beer
	case isWizard(item):
		sel.Sauce = strings.Join(inVocabularyOrder(rule.Options, state.Sauces), ", ")
		if sel.Sauce == "" {
			sel.Sauce = state.MeatType
		}
	case item.OffersSauce && rule.MultiSelect:
		sel.Sauce = strings.Join(inVocabularyOrder(rule.Options, state.Sauces), ", ")
	case item.OffersSauce:
		sel.Sauce = state.Sauce
	}
	return sel
}

// View describes the current step for display.
func (e *ConfigEngine) View(state models.ConfiguratorState) models.ConfiguratorView {
	item := state.Item
	sel := e.Selection(state)
	view := models.ConfiguratorView{
		SessionID: state.SessionID,
		Item:      item,
		Step:      state.Step,
		Groups:    []models.OptionGroup{},
		Selection: sel,
		UnitPrice: UnitPrice(item, sel),
		CanGoBack: state.Step != models.StepOptions && state.Step != models.StepMeat && !state.Step.Terminal(),
	}

	rule := e.catalog.SauceRule(item)
	sauceGroup := func(multi bool, selected []string) models.OptionGroup {
		visible := rule.Visible(state.ShowAllSauces)
		return models.OptionGroup{
			Name:        "sauce",
			Options:     visible,
			Selected:    selected,
			MultiSelect: multi,
			Required:    !multi,
			Max:         rule.MaxSelections,
			HasMore:     len(visible) < len(rule.Options),
		}
	}

	switch state.Step {
	case models.StepOptions:
		if item.RequiresSize() {
			view.Sizes = item.Sizes
			view.Groups = append(view.Groups, models.OptionGroup{
				Name: "size", Options: sizeNames(item.Sizes), Selected: selectedOne(sizeName(state.Size)), Required: true,
			})
		}
		if item.IsBuildYourOwn {
			view.Groups = append(view.Groups, models.OptionGroup{
				Name: "ingredients", Options: catalog.BuildYourOwnIngredients, Selected: nonNil(state.Ingredients),
				MultiSelect: true, Max: catalog.MaxIngredients,
			})
		}
		if item.AllowsExtras() {
			view.Groups = append(view.Groups, models.OptionGroup{
				Name: "extras", Options: catalog.PizzaExtras, Selected: nonNil(state.Extras), MultiSelect: true,
			})
		}
		if item.IsPasta {
			view.Groups = append(view.Groups, models.OptionGroup{
				Name: "pasta_type", Options: catalog.PastaTypes, Selected: selectedOne(state.PastaType), Required: true,
			})
		}
		if item.OffersSauce {
			if rule.MultiSelect {
				view.Groups = append(view.Groups, sauceGroup(true, nonNil(state.Sauces)))
			} else {
				view.Groups = append(view.Groups, sauceGroup(false, selectedOne(state.Sauce)))
			}
		}
		if item.IsBeerSelection {
			view.Groups = append(view.Groups, models.OptionGroup{
				Name: "beer", Options: catalog.BeerTypes, Selected: selectedOne(state.Beer), Required: true,
			})
		}
	case models.StepMeat:
		view.Groups = append(view.Groups, models.OptionGroup{
			Name: "meat_type", Options: catalog.MeatTypes, Selected: selectedOne(state.MeatType), Required: true,
		})
	case models.StepSauce:
		view.Groups = append(view.Groups, sauceGroup(true, nonNil(state.Sauces)))
	case models.StepExclusions:
		view.Groups = append(view.Groups, models.OptionGroup{
			Name: "exclusions", Options: catalog.SaladExclusions, Selected: nonNil(state.Exclusions), MultiSelect: true,
		})
	case models.StepSideDish:
		view.Groups = append(view.Groups, models.OptionGroup{
			Name: "side_dish", Options: catalog.SideDishes, Selected: selectedOne(state.SideDish), Required: true,
		})
	}

	return view
}

// ValidateSelection checks a complete selection posted without going through
// the step machine.
func (e *ConfigEngine) ValidateSelection(item models.MenuItem, sel models.Selection) error {
	if item.RequiresSize() {
		if sel.Size == nil {
			return validationErr("size", "size is required")
		}
		if _, ok := item.FindSize(sel.Size.Name); !ok {
			return validationErr("size", "unknown size %q", sel.Size.Name)
		}
	} else if sel.Size != nil {
		return validationErr("size", "item has no sizes")
	}

	if len(sel.Ingredients) > 0 {
		if !item.IsBuildYourOwn {
			return validationErr("ingredients", "item has no ingredient choice")
		}
		if len(sel.Ingredients) > catalog.MaxIngredients {
			return validationErr("ingredients", "at most %d ingredients", catalog.MaxIngredients)
		}
		if err := allIn("ingredients", sel.Ingredients, catalog.BuildYourOwnIngredients); err != nil {
			return err
		}
	}

	if len(sel.Extras) > 0 {
		if !item.AllowsExtras() {
			return validationErr("extras", "item has no extras")
		}
		if err := allIn("extras", sel.Extras, catalog.PizzaExtras); err != nil {
			return err
		}
	}

	if item.IsPasta {
		if !catalog.Contains(catalog.PastaTypes, sel.PastaType) {
			return validationErr("pasta_type", "pasta type is required")
		}
	} else if sel.PastaType != "" {
		return validationErr("pasta_type", "item has no pasta choice")
	}

	if err := e.validateSauce(item, sel.Sauce); err != nil {
		return err
	}

	if len(sel.Exclusions) > 0 {
		if !isWizard(item) {
			return validationErr("exclusions", "item has no salad choice")
		}
		if err := allIn("exclusions", sel.Exclusions, catalog.SaladExclusions); err != nil {
			return err
		}
	}

	if hasSideDishStep(item) {
		if !catalog.Contains(catalog.SideDishes, sel.SideDish) {
			return validationErr("side_dish", "side dish is required")
		}
	} else if sel.SideDish != "" {
		return validationErr("side_dish", "item has no side dish choice")
	}
	return nil
}

func (e *ConfigEngine) validateSauce(item models.MenuItem, sauce string) error {
	switch {
	case item.IsBeerSelection:
		if !catalog.Contains(catalog.BeerTypes, sauce) {
			return validationErr("beer", "beer type is required")
		}
		return nil
	case !item.OffersSauce:
		if sauce != "" {
			return validationErr("sauce", "item has no sauce choice")
		}
		return nil
	}

	rule := e.catalog.SauceRule(item)
	if !rule.MultiSelect {
		if sauce == "" {
			return validationErr("sauce", "sauce is required")
		}
		if !catalog.Contains(rule.Options, sauce) {
			return validationErr("sauce", "unknown sauce %q", sauce)
		}
		return nil
	}

	if sauce == "" {
		return nil
	}
	if isWizard(item) && catalog.Contains(catalog.MeatTypes, sauce) {
		return nil
	}

	parts := splitSauces(sauce)
	if err := allIn("sauce", parts, rule.Options); err != nil {
		return err
	}
	if catalog.Contains(parts, catalog.NoSauce) && len(parts) > 1 {
		return validationErr("sauce", "%q cannot be combined with other sauces", catalog.NoSauce)
	}
	if rule.MaxSelections > 0 && len(parts) > rule.MaxSelections {
		return validationErr("sauce", "at most %d sauces", rule.MaxSelections)
	}
	return nil
}

// toggleSauce applies the "no sauce" exclusivity and the selection cap.
// It reports false when the toggle was refused.
func toggleSauce(current []string, sauce string, max int) ([]string, bool) {
	if sauce == catalog.NoSauce {
		if catalog.Contains(current, sauce) {
			return nil, true
		}
		return []string{catalog.NoSauce}, true
	}

	rest := without(current, catalog.NoSauce)
	if catalog.Contains(rest, sauce) {
		return without(rest, sauce), true
	}
	if max > 0 && len(rest) >= max {
		return current, false
	}
	return append(rest, sauce), true
}

func splitSauces(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func inVocabularyOrder(vocabulary, selected []string) []string {
	out := []string{}
	for _, v := range vocabulary {
		if catalog.Contains(selected, v) {
			out = append(out, v)
		}
	}
	return out
}

func allIn(field string, values, allowed []string) error {
	seen := map[string]bool{}
	for _, v := range values {
		if !catalog.Contains(allowed, v) {
			return validationErr(field, "unknown option %q", v)
		}
		if seen[v] {
			return validationErr(field, "duplicate option %q", v)
		}
		seen[v] = true
	}
	return nil
}

func toggle(list []string, value string) []string {
	if catalog.Contains(list, value) {
		return without(list, value)
	}
	return append(list, value)
}

func without(list []string, value string) []string {
	out := []string{}
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func cloneList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func selectedOne(v string) []string {
	if v == "" {
		return []string{}
	}
	return []string{v}
}

func sizeName(s *models.Size) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func sizeNames(sizes []models.Size) []string {
	names := make([]string, len(sizes))
	for i, s := range sizes {
		names[i] = s.Name
	}
	return names
}
