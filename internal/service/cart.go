package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// Cart owns the server-side shopping cart. Every mutation returns the
// full authoritative cart so clients replace their cache wholesale.
type Cart struct {
	cartStore    model.CartStore
	productStore model.ProductStore
	logger       *logger.Logger
}

func NewCart(cartStore model.CartStore, productStore model.ProductStore, logger *logger.Logger) *Cart {
	return &Cart{
		cartStore:    cartStore,
		productStore: productStore,
		logger:       logger,
	}
}

func (s *Cart) Get(ctx context.Context, userID uuid.UUID) (model.Cart, error) {
	cart, err := s.cartStore.GetByUserID(ctx, userID)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

// Add puts a product in the cart. If a line for the product already
// exists its quantity is incremented; a duplicate line is never created.
func (s *Cart) Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (model.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.productStore.GetByID(ctx, productID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Cart{}, model.NewErrProductNotFound(productID.String())
		}
		return model.Cart{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	cart, err := s.cartStore.AddLine(ctx, userID, model.CartLine{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to add cart line: %w", err)
	}

	s.logger.Info("Cart service: line added",
		"user_id", userID,
		"product_id", productID,
		"quantity", quantity)

	return cart, nil
}

// SetQuantity updates a line's quantity, clamped to a floor of 1.
// Reaching zero requires an explicit Remove, not a decrement.
func (s *Cart) SetQuantity(ctx context.Context, userID uuid.UUID, lineID uuid.UUID, quantity int) (model.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.cartStore.UpdateLineQuantity(ctx, userID, lineID, quantity)
	if errors.Is(err, model.ErrNotFound) {
		return model.Cart{}, &model.APIError{Status: 404, Message: "cart line not found"}
	}
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to update cart line: %w", err)
	}

	return cart, nil
}

// Remove deletes a line. Removing a non-existent line is a no-op and
// returns the unchanged cart.
func (s *Cart) Remove(ctx context.Context, userID uuid.UUID, lineID uuid.UUID) (model.Cart, error) {
	cart, err := s.cartStore.RemoveLine(ctx, userID, lineID)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to remove cart line: %w", err)
	}

	return cart, nil
}

func (s *Cart) Clear(ctx context.Context, userID uuid.UUID) (model.Cart, error) {
	if err := s.cartStore.Clear(ctx, userID); err != nil {
		return model.Cart{}, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info("Cart service: cart cleared",
		"user_id", userID)

	return model.Cart{UserID: userID, Lines: []model.CartLine{}}, nil
}
