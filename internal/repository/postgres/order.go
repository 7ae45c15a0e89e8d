package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

type OrderRepository struct {
	db *Connection
}

func NewOrderRepository(db *Connection) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to marshal order items: %w", err)
	}
	address, err := json.Marshal(order.Address)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to marshal order address: %w", err)
	}

	query := `INSERT INTO orders (id, user_id, items, address, payment_method, payment_id, total, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.Exec(ctx, query,
		order.ID, order.UserID, items, address, order.PaymentMethod,
		order.PaymentID, order.Total, order.Status, order.CreatedAt,
	)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	query := `SELECT id, user_id, items, address, payment_method, payment_id, total, status, created_at
			  FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, model.ErrNotFound
		}
		return model.Order{}, fmt.Errorf("failed to get order by id: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	query := `SELECT id, user_id, items, address, payment_method, payment_id, total, status, created_at
			  FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var order model.Order
	var items, address []byte

	if err := row.Scan(
		&order.ID, &order.UserID, &items, &address, &order.PaymentMethod,
		&order.PaymentID, &order.Total, &order.Status, &order.CreatedAt,
	); err != nil {
		return model.Order{}, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return model.Order{}, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	if err := json.Unmarshal(address, &order.Address); err != nil {
		return model.Order{}, fmt.Errorf("failed to unmarshal order address: %w", err)
	}

	return order, nil
}
