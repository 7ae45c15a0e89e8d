package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.CartStore = (*CartRepository)(nil)

type CartRepository struct {
	db *Connection
}

func NewCartRepository(db *Connection) *CartRepository {
	return &CartRepository{
		db: db,
	}
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Cart, error) {
	query := `SELECT id, product_id, quantity FROM cart_lines
			  WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}
	defer rows.Close()

	cart := model.Cart{UserID: userID, Lines: make([]model.CartLine, 0)}
	for rows.Next() {
		var line model.CartLine
		if err := rows.Scan(&line.ID, &line.ProductID, &line.Quantity); err != nil {
			return model.Cart{}, fmt.Errorf("failed to scan cart line: %w", err)
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return model.Cart{}, fmt.Errorf("failed to iterate cart lines: %w", err)
	}

	return cart, nil
}

// AddLine inserts a line, or increments the quantity of the existing
// line for the same product. The unique (user_id, product_id) constraint
// keeps the one-line-per-product invariant.
func (r *CartRepository) AddLine(ctx context.Context, userID uuid.UUID, line model.CartLine) (model.Cart, error) {
	query := `INSERT INTO cart_lines (id, user_id, product_id, quantity)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (user_id, product_id) DO UPDATE
			  SET quantity = cart_lines.quantity + EXCLUDED.quantity`

	_, err := r.db.Exec(ctx, query, line.ID, userID, line.ProductID, line.Quantity)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to add cart line: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}

func (r *CartRepository) UpdateLineQuantity(ctx context.Context, userID uuid.UUID, lineID uuid.UUID, quantity int) (model.Cart, error) {
	query := `UPDATE cart_lines SET quantity = $3 WHERE id = $2 AND user_id = $1`

	tag, err := r.db.Exec(ctx, query, userID, lineID, quantity)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to update cart line quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Cart{}, model.ErrNotFound
	}

	return r.GetByUserID(ctx, userID)
}

// RemoveLine deletes a line. Removing a line that does not exist is a
// no-op; the current cart is returned either way.
func (r *CartRepository) RemoveLine(ctx context.Context, userID uuid.UUID, lineID uuid.UUID) (model.Cart, error) {
	query := `DELETE FROM cart_lines WHERE id = $2 AND user_id = $1`

	_, err := r.db.Exec(ctx, query, userID, lineID)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to remove cart line: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}

func (r *CartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM cart_lines WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
