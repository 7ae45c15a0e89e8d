package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	// PaymentMethodCOD is pay-on-delivery.
	PaymentMethodCOD PaymentMethod = "cod"
	// PaymentMethodOnline is the hosted payment-gateway path.
	PaymentMethodOnline PaymentMethod = "online"
)

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// OrderStore defines persistence operations for orders.
type OrderStore interface {
	Create(ctx context.Context, order Order) (Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Order, error)
}

// OrderItem snapshots a product and quantity at the moment the order was
// placed, so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID uuid.UUID
	Brand     string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Order is a submitted purchase: cart snapshot, shipping address and
// payment outcome.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Items         []OrderItem
	Address       Address
	PaymentMethod PaymentMethod
	PaymentID     string
	Total         float64
	Status        OrderStatus
	CreatedAt     time.Time
}

// CreateOrderParams contains parameters to place an order.
type CreateOrderParams struct {
	UserID        uuid.UUID
	AddressID     uuid.UUID
	PaymentMethod PaymentMethod
	PaymentID     string
}
