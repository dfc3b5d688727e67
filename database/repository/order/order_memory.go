// File: database/repository/order/order_memory.go
package orderRepo

import (
	"context"
	"sync"

	"viaduct/models"
)

type memoryOrderRepo struct {
	mu      sync.RWMutex
	records map[string]models.Order
}

// NewMemoryOrderRepo constructs an in-memory OrderRepository.
func NewMemoryOrderRepo() OrderRepository {
	return &memoryOrderRepo{records: make(map[string]models.Order)}
}

func (r *memoryOrderRepo) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]models.Order, 0, len(r.records))
	for _, o := range r.records {
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *memoryOrderRepo) Upsert(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[order.ID] = order
	return nil
}

func (r *memoryOrderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}
