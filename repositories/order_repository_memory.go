package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"doener-shop/models"

	"github.com/google/uuid"
)

// MemoryOrderRepository keeps orders in process memory. Used when no
// database is configured and in tests.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string][]byte
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string][]byte)}
}

func (r *MemoryOrderRepository) Create(ctx context.Context, order *models.OrderRecord) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = data
	return nil
}

func (r *MemoryOrderRepository) List(ctx context.Context, filter OrderFilter) ([]models.OrderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []models.OrderRecord{}
	for _, data := range r.orders {
		var o models.OrderRecord
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, err
		}
		if filter.Match(o.CreatedAt) {
			orders = append(orders, o)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *MemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	return nil
}
