package services

import (
	"context"
	"errors"
	"fmt"

	"doener-shop/catalog"
	"doener-shop/models"
	"doener-shop/repositories"
)

type CartService struct {
	repo    repositories.CartRepository
	catalog *catalog.Catalog
	engine  *ConfigEngine
}

func NewCartService(repo repositories.CartRepository, cat *catalog.Catalog, engine *ConfigEngine) *CartService {
	return &CartService{repo: repo, catalog: cat, engine: engine}
}

// Load returns the stored cart, or a new empty one when the id is unknown.
// Lines whose menu item no longer exists are dropped.
func (s *CartService) Load(ctx context.Context, cartID string) (*Cart, error) {
	data, err := s.repo.Load(ctx, cartID)
	if errors.Is(err, repositories.ErrNotFound) {
		return NewCart(cartID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	lines := data.Lines[:0]
	for _, line := range data.Lines {
		item, ok := s.catalog.Find(line.Item.ID)
		if !ok {
			continue
		}
		line.Item = item
		lines = append(lines, line)
	}
	data.Lines = lines
	data.ID = cartID
	return RestoreCart(data), nil
}

func (s *CartService) save(ctx context.Context, cart *Cart) (models.CartView, error) {
	if err := s.repo.Save(ctx, cart.Snapshot()); err != nil {
		return models.CartView{}, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart.View(), nil
}

func (s *CartService) Get(ctx context.Context, cartID string) (models.CartView, error) {
	cart, err := s.Load(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}
	return cart.View(), nil
}

func (s *CartService) resolve(itemID int, sel models.Selection) (models.MenuItem, models.Selection, error) {
	item, ok := s.catalog.Find(itemID)
	if !ok {
		return models.MenuItem{}, sel, ErrItemNotFound
	}
	sel = sel.Clone()
	if sel.Size != nil {
		if size, ok := item.FindSize(sel.Size.Name); ok {
			sel.Size = &size
		}
	}
	return item, sel, nil
}

// AddItem adds one unit of a directly posted selection. Age-restricted items
// must go through the configurator so the age confirmation is recorded.
func (s *CartService) AddItem(ctx context.Context, cartID string, itemID int, sel models.Selection) (models.CartView, error) {
	item, sel, err := s.resolve(itemID, sel)
	if err != nil {
		return models.CartView{}, err
	}
	if item.IsAgeRestricted {
		return models.CartView{}, validationErr("age", "age confirmation required for %s", item.Name)
	}
	if err := s.engine.ValidateSelection(item, sel); err != nil {
		return models.CartView{}, err
	}
	return s.AddConfigured(ctx, cartID, item, sel)
}

// AddConfigured adds a selection that already passed the configurator.
func (s *CartService) AddConfigured(ctx context.Context, cartID string, item models.MenuItem, sel models.Selection) (models.CartView, error) {
	cart, err := s.Load(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}
	if cart.QuantityOf(item.ID, sel) >= MaxLineQuantity {
		return models.CartView{}, validationErr("quantity", "at most %d per item", MaxLineQuantity)
	}
	cart.AddItem(item, sel)
	return s.save(ctx, cart)
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartID string, itemID int, sel models.Selection, quantity int) (models.CartView, error) {
	if quantity > MaxLineQuantity {
		return models.CartView{}, validationErr("quantity", "at most %d per item", MaxLineQuantity)
	}
	_, sel, err := s.resolve(itemID, sel)
	if err != nil {
		return models.CartView{}, err
	}
	cart, err := s.Load(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}
	if !cart.UpdateQuantity(itemID, sel, quantity) {
		return cart.View(), nil
	}
	return s.save(ctx, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, cartID string, itemID int, sel models.Selection) (models.CartView, error) {
	cart, err := s.Load(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}
	if !cart.RemoveItem(itemID, sel) {
		return cart.View(), nil
	}
	return s.save(ctx, cart)
}

func (s *CartService) Clear(ctx context.Context, cartID string) (models.CartView, error) {
	if err := s.repo.Delete(ctx, cartID); err != nil {
		return models.CartView{}, fmt.Errorf("failed to clear cart: %w", err)
	}
	return NewCart(cartID).View(), nil
}
