package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// Wishlist owns the server-side wishlist. Mutations return the full
// authoritative wishlist.
type Wishlist struct {
	wishlistStore model.WishlistStore
	productStore  model.ProductStore
	logger        *logger.Logger
}

func NewWishlist(wishlistStore model.WishlistStore, productStore model.ProductStore, logger *logger.Logger) *Wishlist {
	return &Wishlist{
		wishlistStore: wishlistStore,
		productStore:  productStore,
		logger:        logger,
	}
}

func (s *Wishlist) Get(ctx context.Context, userID uuid.UUID) (model.Wishlist, error) {
	wishlist, err := s.wishlistStore.GetByUserID(ctx, userID)
	if err != nil {
		return model.Wishlist{}, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return wishlist, nil
}

// Add puts a product on the wishlist; adding an already-present product
// is a no-op (first-seen wins).
func (s *Wishlist) Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error) {
	if _, err := s.productStore.GetByID(ctx, productID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Wishlist{}, model.NewErrProductNotFound(productID.String())
		}
		return model.Wishlist{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	wishlist, err := s.wishlistStore.Add(ctx, userID, productID)
	if err != nil {
		return model.Wishlist{}, fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	return wishlist, nil
}

// Remove drops a product from the wishlist; removing an absent product
// is a no-op.
func (s *Wishlist) Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error) {
	wishlist, err := s.wishlistStore.Remove(ctx, userID, productID)
	if err != nil {
		return model.Wishlist{}, fmt.Errorf("failed to remove wishlist entry: %w", err)
	}

	return wishlist, nil
}
