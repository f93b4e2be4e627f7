package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doener-shop/catalog"
	"doener-shop/models"
	"doener-shop/repositories"

	"github.com/google/uuid"
)

// ConfiguratorService keeps configurator sessions between requests and hands
// finished selections to the cart.
type ConfiguratorService struct {
	sessions repositories.SessionRepository
	catalog  *catalog.Catalog
	engine   *ConfigEngine
	carts    *CartService
}

func NewConfiguratorService(sessions repositories.SessionRepository, cat *catalog.Catalog, engine *ConfigEngine, carts *CartService) *ConfiguratorService {
	return &ConfiguratorService{sessions: sessions, catalog: cat, engine: engine, carts: carts}
}

func (s *ConfiguratorService) Open(ctx context.Context, cartID string, itemID int) (models.ConfiguratorView, error) {
	item, ok := s.catalog.Find(itemID)
	if !ok {
		return models.ConfiguratorView{}, ErrItemNotFound
	}

	state := s.engine.Open(item)
	state.SessionID = uuid.NewString()
	state.CartID = cartID

	if err := s.sessions.Save(ctx, state); err != nil {
		return models.ConfiguratorView{}, fmt.Errorf("failed to save configurator session: %w", err)
	}
	return s.engine.View(state), nil
}

func (s *ConfiguratorService) load(ctx context.Context, cartID, sessionID string) (models.ConfiguratorState, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if errors.Is(err, repositories.ErrNotFound) {
		return state, ErrSessionNotFound
	}
	if err != nil {
		return state, fmt.Errorf("failed to load configurator session: %w", err)
	}
	if state.CartID != cartID {
		return models.ConfiguratorState{}, ErrSessionNotFound
	}
	return state, nil
}

func (s *ConfiguratorService) Get(ctx context.Context, cartID, sessionID string) (models.ConfiguratorView, error) {
	state, err := s.load(ctx, cartID, sessionID)
	if err != nil {
		return models.ConfiguratorView{}, err
	}
	return s.engine.View(state), nil
}

// Apply runs one event. Reaching done adds the selection to the cart and ends
// the session; cancelling ends it without touching the cart.
func (s *ConfiguratorService) Apply(ctx context.Context, cartID, sessionID string, ev Event) (models.ConfiguratorView, error) {
	state, err := s.load(ctx, cartID, sessionID)
	if err != nil {
		return models.ConfiguratorView{}, err
	}

	next, err := s.engine.Transition(state, ev)
	if err != nil {
		return s.engine.View(state), err
	}
	next.UpdatedAt = time.Now()
	view := s.engine.View(next)

	switch next.Step {
	case models.StepDone:
		cart, err := s.carts.AddConfigured(ctx, cartID, next.Item, s.engine.Selection(next))
		if err != nil {
			return view, err
		}
		view.Cart = &cart
		return view, s.sessions.Delete(ctx, sessionID)
	case models.StepCancelled:
		return view, s.sessions.Delete(ctx, sessionID)
	}

	if err := s.sessions.Save(ctx, next); err != nil {
		return view, fmt.Errorf("failed to save configurator session: %w", err)
	}
	return view, nil
}

func (s *ConfiguratorService) Close(ctx context.Context, cartID, sessionID string) error {
	if _, err := s.load(ctx, cartID, sessionID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sessionID)
}
