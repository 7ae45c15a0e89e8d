package model

import (
	"context"

	"github.com/google/uuid"
)

// CartStore defines persistence operations for carts. Every mutation
// returns the full authoritative cart so callers can replace their copy
// wholesale instead of patching it.
type CartStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Cart, error)
	AddLine(ctx context.Context, userID uuid.UUID, line CartLine) (Cart, error)
	UpdateLineQuantity(ctx context.Context, userID uuid.UUID, lineID uuid.UUID, quantity int) (Cart, error)
	RemoveLine(ctx context.Context, userID uuid.UUID, lineID uuid.UUID) (Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// CartLine is one product's presence in a cart. At most one line exists
// per product id; adding the same product again increments the quantity.
type CartLine struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// Cart is the ordered set of lines owned by one user.
type Cart struct {
	UserID uuid.UUID
	Lines  []CartLine
}
