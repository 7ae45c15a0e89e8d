package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines persistence operations for catalog products.
type ProductStore interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product Product) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Product is a purchasable catalog item. Price is held in the one
// canonical numeric form (rupees); currency-formatted strings are
// normalized at the boundary where they enter the system.
type Product struct {
	ID          uuid.UUID
	Brand       string
	Name        string
	Price       float64
	Image       string
	Category    string
	Subcategory string
	Description string
	CreatedAt   time.Time
}
