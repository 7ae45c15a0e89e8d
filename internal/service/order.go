package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// defaultLeadTimeDays is used for states missing from the lead-time table.
const defaultLeadTimeDays = 7

// stateLeadTimeDays maps an Indian state to its delivery lead time.
var stateLeadTimeDays = map[string]int{
	"delhi":          2,
	"haryana":        2,
	"uttar pradesh":  3,
	"punjab":         3,
	"rajasthan":      4,
	"maharashtra":    4,
	"gujarat":        4,
	"karnataka":      5,
	"telangana":      5,
	"tamil nadu":     5,
	"west bengal":    5,
	"kerala":         6,
	"assam":          8,
	"jammu & kashmir": 9,
}

// Order composes cart contents, a shipping address and a payment outcome
// into a submitted order.
type Order struct {
	orderStore   model.OrderStore
	cartStore    model.CartStore
	productStore model.ProductStore
	addressStore model.AddressStore
	logger       *logger.Logger
}

func NewOrder(
	orderStore model.OrderStore,
	cartStore model.CartStore,
	productStore model.ProductStore,
	addressStore model.AddressStore,
	logger *logger.Logger,
) *Order {
	return &Order{
		orderStore:   orderStore,
		cartStore:    cartStore,
		productStore: productStore,
		addressStore: addressStore,
		logger:       logger,
	}
}

// Place snapshots the user's cart into an order and clears the cart.
// For the online payment method the caller must have completed provider
// verification first; PaymentID carries the verified payment reference.
func (s *Order) Place(ctx context.Context, params model.CreateOrderParams) (model.Order, error) {
	if params.PaymentMethod != model.PaymentMethodCOD && params.PaymentMethod != model.PaymentMethodOnline {
		return model.Order{}, model.NewErrValidation("unknown payment method")
	}
	if params.PaymentMethod == model.PaymentMethodOnline && params.PaymentID == "" {
		return model.Order{}, model.NewErrValidation("online orders require a verified payment id")
	}

	address, err := s.addressStore.GetByID(ctx, params.AddressID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Order{}, model.NewErrValidation("shipping address not found")
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to get address: %w", err)
	}
	if address.UserID != params.UserID {
		return model.Order{}, model.NewErrValidation("shipping address not found")
	}

	cart, err := s.cartStore.GetByUserID(ctx, params.UserID)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to get cart: %w", err)
	}
	if len(cart.Lines) == 0 {
		return model.Order{}, model.NewErrValidation("cart is empty")
	}

	items := make([]model.OrderItem, 0, len(cart.Lines))
	var total float64
	for _, line := range cart.Lines {
		product, err := s.productStore.GetByID(ctx, line.ProductID)
		if err != nil {
			return model.Order{}, fmt.Errorf("failed to get product %s: %w", line.ProductID, err)
		}
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Brand:     product.Brand,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		total += product.Price * float64(line.Quantity)
	}
	total = math.Round(total*100) / 100

	order, err := s.orderStore.Create(ctx, model.Order{
		ID:            uuid.New(),
		UserID:        params.UserID,
		Items:         items,
		Address:       address,
		PaymentMethod: params.PaymentMethod,
		PaymentID:     params.PaymentID,
		Total:         total,
		Status:        model.OrderStatusPlaced,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cartStore.Clear(ctx, params.UserID); err != nil {
		// The order is already placed; a stale cart is recoverable.
		s.logger.Error("Order service: failed to clear cart after order",
			"user_id", params.UserID,
			"order_id", order.ID,
			"error", err.Error())
	}

	s.logger.Info("Order service: order placed",
		"user_id", params.UserID,
		"order_id", order.ID,
		"total", order.Total)

	return order, nil
}

func (s *Order) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// EstimateDelivery returns the lead time in days for a destination state.
func (s *Order) EstimateDelivery(state string) int {
	if days, ok := stateLeadTimeDays[strings.ToLower(strings.TrimSpace(state))]; ok {
		return days
	}
	return defaultLeadTimeDays
}
