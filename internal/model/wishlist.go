package model

import (
	"context"

	"github.com/google/uuid"
)

// WishlistStore defines persistence operations for wishlists. Mutations
// return the full authoritative wishlist.
type WishlistStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Wishlist, error)
	Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (Wishlist, error)
	Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (Wishlist, error)
}

// WishlistEntry is a product reference with no quantity. At most one
// entry exists per product id; re-adding is a no-op.
type WishlistEntry struct {
	ProductID uuid.UUID
}

// Wishlist is the ordered set of entries owned by one user.
type Wishlist struct {
	UserID  uuid.UUID
	Entries []WishlistEntry
}
