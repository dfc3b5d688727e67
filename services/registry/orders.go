package registry

import (
	"context"

	"viaduct/models"
	"viaduct/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Load replaces the order feed with the persisted records, falling
// back to empty on failure.
func (r *DefaultOrderRegistry) Load(ctx context.Context) error {
	orders, err := r.Repo.List(ctx)
	if err != nil {
		utils.GetLogger().Error("Failed to load orders, starting empty", zap.Error(err))
		orders = nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = orders
	return nil
}

// List returns a copy of the order feed.
func (r *DefaultOrderRegistry) List() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// Create appends a new order. The client name is required.
func (r *DefaultOrderRegistry) Create(order models.Order) (*models.Order, error) {
	if order.Client == "" {
		return nil, ValidationError{Reason: "client is required"}
	}
	order.ID = uuid.New().String()
	order.CreatedAt = r.Now()
	order.UpdatedAt = order.CreatedAt

	r.mu.Lock()
	next := make([]models.Order, len(r.orders), len(r.orders)+1)
	copy(next, r.orders)
	r.orders = append(next, order)
	r.mu.Unlock()

	r.persist(order)
	return &order, nil
}

// Update replaces the mutable fields of an order; id and creation time
// are preserved.
func (r *DefaultOrderRegistry) Update(id string, order models.Order) (*models.Order, error) {
	r.mu.Lock()
	idx := -1
	for i, o := range r.orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return nil, NotFoundError{Kind: "order", ID: id}
	}

	next := make([]models.Order, len(r.orders))
	copy(next, r.orders)
	order.ID = id
	order.CreatedAt = next[idx].CreatedAt
	order.UpdatedAt = r.Now()
	next[idx] = order
	r.orders = next
	r.mu.Unlock()

	r.persist(order)
	return &order, nil
}

// Delete removes an order from the feed.
func (r *DefaultOrderRegistry) Delete(id string) error {
	r.mu.Lock()
	idx := -1
	for i, o := range r.orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return NotFoundError{Kind: "order", ID: id}
	}
	next := make([]models.Order, 0, len(r.orders)-1)
	next = append(next, r.orders[:idx]...)
	next = append(next, r.orders[idx+1:]...)
	r.orders = next
	r.mu.Unlock()

	if err := r.Repo.Delete(context.Background(), id); err != nil {
		utils.GetLogger().Error("Failed to delete order from store", zap.String("id", id), zap.Error(err))
	}
	return nil
}

func (r *DefaultOrderRegistry) persist(order models.Order) {
	if err := r.Repo.Upsert(context.Background(), order); err != nil {
		utils.GetLogger().Error("Failed to persist order, keeping local state",
			zap.String("id", order.ID), zap.Error(err))
	}
}
