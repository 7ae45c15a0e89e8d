package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.WishlistStore = (*WishlistRepository)(nil)

type WishlistRepository struct {
	db *Connection
}

func NewWishlistRepository(db *Connection) *WishlistRepository {
	return &WishlistRepository{
		db: db,
	}
}

func (r *WishlistRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Wishlist, error) {
	query := `SELECT product_id FROM wishlist_entries
			  WHERE user_id = $1 ORDER BY created_at, product_id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return model.Wishlist{}, fmt.Errorf("failed to get wishlist: %w", err)
	}
	defer rows.Close()

	wishlist := model.Wishlist{UserID: userID, Entries: make([]model.WishlistEntry, 0)}
	for rows.Next() {
		var entry model.WishlistEntry
		if err := rows.Scan(&entry.ProductID); err != nil {
			return model.Wishlist{}, fmt.Errorf("failed to scan wishlist entry: %w", err)
		}
		wishlist.Entries = append(wishlist.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return model.Wishlist{}, fmt.Errorf("failed to iterate wishlist entries: %w", err)
	}

	return wishlist, nil
}

// Add inserts an entry; adding an already-present product is a no-op
// (first-seen wins, enforced by the primary key).
func (r *WishlistRepository) Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error) {
	query := `INSERT INTO wishlist_entries (user_id, product_id)
			  VALUES ($1, $2)
			  ON CONFLICT (user_id, product_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		return model.Wishlist{}, fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}

func (r *WishlistRepository) Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error) {
	query := `DELETE FROM wishlist_entries WHERE user_id = $1 AND product_id = $2`

	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		return model.Wishlist{}, fmt.Errorf("failed to remove wishlist entry: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}
