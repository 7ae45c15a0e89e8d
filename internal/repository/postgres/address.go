package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.AddressStore = (*AddressRepository)(nil)

type AddressRepository struct {
	db *Connection
}

func NewAddressRepository(db *Connection) *AddressRepository {
	return &AddressRepository{
		db: db,
	}
}

func (r *AddressRepository) Create(ctx context.Context, address model.Address) (model.Address, error) {
	query := `INSERT INTO addresses (id, user_id, name, phone, line1, line2, city, state, pincode, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, user_id, name, phone, line1, line2, city, state, pincode, created_at`

	var saved model.Address
	err := r.db.QueryRow(ctx, query,
		address.ID, address.UserID, address.Name, address.Phone, address.Line1,
		address.Line2, address.City, address.State, address.Pincode, address.CreatedAt,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Name, &saved.Phone, &saved.Line1,
		&saved.Line2, &saved.City, &saved.State, &saved.Pincode, &saved.CreatedAt,
	)
	if err != nil {
		return model.Address{}, fmt.Errorf("failed to create address: %w", err)
	}

	return saved, nil
}

func (r *AddressRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	query := `SELECT id, user_id, name, phone, line1, line2, city, state, pincode, created_at
			  FROM addresses WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]model.Address, 0)
	for rows.Next() {
		var address model.Address
		if err := rows.Scan(
			&address.ID, &address.UserID, &address.Name, &address.Phone, &address.Line1,
			&address.Line2, &address.City, &address.State, &address.Pincode, &address.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate addresses: %w", err)
	}

	return addresses, nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Address, error) {
	var address model.Address
	query := `SELECT id, user_id, name, phone, line1, line2, city, state, pincode, created_at
			  FROM addresses WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&address.ID, &address.UserID, &address.Name, &address.Phone, &address.Line1,
		&address.Line2, &address.City, &address.State, &address.Pincode, &address.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Address{}, model.ErrNotFound
		}
		return model.Address{}, fmt.Errorf("failed to get address by id: %w", err)
	}

	return address, nil
}

func (r *AddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM addresses WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
