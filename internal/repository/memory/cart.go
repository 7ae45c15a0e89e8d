package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.CartStore = (*CartRepository)(nil)

type CartRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]model.CartLine
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		byUser: make(map[uuid.UUID][]model.CartLine),
	}
}

func (r *CartRepository) GetByUserID(_ context.Context, userID uuid.UUID) (model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(userID), nil
}

func (r *CartRepository) AddLine(_ context.Context, userID uuid.UUID, line model.CartLine) (model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.byUser[userID]
	for i, existing := range lines {
		if existing.ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			return r.snapshot(userID), nil
		}
	}
	r.byUser[userID] = append(lines, line)
	return r.snapshot(userID), nil
}

func (r *CartRepository) UpdateLineQuantity(_ context.Context, userID uuid.UUID, lineID uuid.UUID, quantity int) (model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.byUser[userID]
	for i, existing := range lines {
		if existing.ID == lineID {
			lines[i].Quantity = quantity
			return r.snapshot(userID), nil
		}
	}
	return model.Cart{}, model.ErrNotFound
}

func (r *CartRepository) RemoveLine(_ context.Context, userID uuid.UUID, lineID uuid.UUID) (model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.byUser[userID]
	for i, existing := range lines {
		if existing.ID == lineID {
			r.byUser[userID] = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	return r.snapshot(userID), nil
}

func (r *CartRepository) Clear(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser, userID)
	return nil
}

// snapshot copies the user's lines; callers must hold at least a read lock.
func (r *CartRepository) snapshot(userID uuid.UUID) model.Cart {
	lines := r.byUser[userID]
	cart := model.Cart{UserID: userID, Lines: make([]model.CartLine, len(lines))}
	copy(cart.Lines, lines)
	return cart
}
