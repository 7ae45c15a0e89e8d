package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.WishlistStore = (*WishlistRepository)(nil)

type WishlistRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]model.WishlistEntry
}

func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{
		byUser: make(map[uuid.UUID][]model.WishlistEntry),
	}
}

func (r *WishlistRepository) GetByUserID(_ context.Context, userID uuid.UUID) (model.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(userID), nil
}

func (r *WishlistRepository) Add(_ context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.byUser[userID] {
		if entry.ProductID == productID {
			return r.snapshot(userID), nil
		}
	}
	r.byUser[userID] = append(r.byUser[userID], model.WishlistEntry{ProductID: productID})
	return r.snapshot(userID), nil
}

func (r *WishlistRepository) Remove(_ context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.byUser[userID]
	for i, entry := range entries {
		if entry.ProductID == productID {
			r.byUser[userID] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	return r.snapshot(userID), nil
}

func (r *WishlistRepository) snapshot(userID uuid.UUID) model.Wishlist {
	entries := r.byUser[userID]
	wishlist := model.Wishlist{UserID: userID, Entries: make([]model.WishlistEntry, len(entries))}
	copy(wishlist.Entries, entries)
	return wishlist
}
