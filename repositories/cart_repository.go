package repositories

import (
	"context"
	"time"

	"doener-shop/models"

	"github.com/redis/go-redis/v9"
)

type CartRepository interface {
	Load(ctx context.Context, id string) (models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
	Delete(ctx context.Context, id string) error
}

// CartStore keeps one document per cart id. Concurrent writers to the same
// cart overwrite each other; the last save wins.
type CartStore struct {
	kv kvStore
}

func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{kv: newKVStore(client, "cart:", ttl)}
}

func (s *CartStore) Load(ctx context.Context, id string) (models.Cart, error) {
	var cart models.Cart
	if err := s.kv.get(ctx, id, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *CartStore) Save(ctx context.Context, cart models.Cart) error {
	return s.kv.set(ctx, cart.ID, cart)
}

func (s *CartStore) Delete(ctx context.Context, id string) error {
	return s.kv.del(ctx, id)
}

type SessionRepository interface {
	Load(ctx context.Context, id string) (models.ConfiguratorState, error)
	Save(ctx context.Context, state models.ConfiguratorState) error
	Delete(ctx context.Context, id string) error
}

// SessionStore keeps in-progress item configurations.
type SessionStore struct {
	kv kvStore
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{kv: newKVStore(client, "configurator:", ttl)}
}

func (s *SessionStore) Load(ctx context.Context, id string) (models.ConfiguratorState, error) {
	var state models.ConfiguratorState
	if err := s.kv.get(ctx, id, &state); err != nil {
		return models.ConfiguratorState{}, err
	}
	return state, nil
}

func (s *SessionStore) Save(ctx context.Context, state models.ConfiguratorState) error {
	return s.kv.set(ctx, state.SessionID, state)
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.kv.del(ctx, id)
}
