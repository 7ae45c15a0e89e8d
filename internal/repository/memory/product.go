package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

// ProductRepository keeps insertion order so listings are stable, which
// the catalog's "insertion order" sort key relies on.
type ProductRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]model.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID: make(map[uuid.UUID]model.Product),
	}
}

func (r *ProductRepository) Create(_ context.Context, product model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[product.ID]; !ok {
		r.order = append(r.order, product.ID)
	}
	r.byID[product.ID] = product
	return product, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id uuid.UUID) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.byID[id]
	if !ok {
		return model.Product{}, model.ErrNotFound
	}
	return product, nil
}

func (r *ProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.byID[id])
	}
	return products, nil
}

func (r *ProductRepository) Update(_ context.Context, product model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[product.ID]; !ok {
		return model.Product{}, model.ErrNotFound
	}
	r.byID[product.ID] = product
	return product, nil
}

func (r *ProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.byID, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
