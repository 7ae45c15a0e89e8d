package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

type OrderRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]model.Order
	byUser map[uuid.UUID][]uuid.UUID
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID:   make(map[uuid.UUID]model.Order),
		byUser: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *OrderRepository) Create(_ context.Context, order model.Order) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[order.ID] = order
	// Prepend so GetByUserID returns newest first, matching the postgres
	// repository's ordering.
	r.byUser[order.UserID] = append([]uuid.UUID{order.ID}, r.byUser[order.UserID]...)
	return order, nil
}

func (r *OrderRepository) GetByID(_ context.Context, id uuid.UUID) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[id]
	if !ok {
		return model.Order{}, model.ErrNotFound
	}
	return order, nil
}

func (r *OrderRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	orders := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, r.byID[id])
	}
	return orders, nil
}
