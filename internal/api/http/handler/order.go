package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// OrderService defines the checkout operations.
type OrderService interface {
	Place(ctx context.Context, params model.CreateOrderParams) (model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	EstimateDelivery(state string) int
}

// Order handles the /api/orders endpoints.
type Order struct {
	orderService   OrderService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewOrder creates a new Order handler.
func NewOrder(orderService OrderService, contextManager model.ContextManager, logger *logger.Logger) *Order {
	return &Order{
		orderService:   orderService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type placeOrderRequest struct {
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentID     string `json:"paymentId"`
}

// Place handles POST /api/orders.
func (h *Order) Place(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	var req placeOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid address id"))
		return
	}

	order, err := h.orderService.Place(r.Context(), model.CreateOrderParams{
		UserID:        userID,
		AddressID:     addressID,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		PaymentID:     req.PaymentID,
	})
	if err != nil {
		h.logger.Error("Order handler: place failed",
			"user_id", userID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toOrderDTO(order))
}

// ListMine handles GET /api/orders/my-orders.
func (h *Order) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	orders, err := h.orderService.ListByUser(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toOrderDTOs(orders))
}

type deliveryEstimateResponse struct {
	State string `json:"state"`
	Days  int    `json:"days"`
}

// EstimateDelivery handles GET /api/orders/delivery-estimate?state=...
func (h *Order) EstimateDelivery(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		WriteError(w, model.NewErrValidation("state is required"))
		return
	}

	writeData(w, http.StatusOK, deliveryEstimateResponse{
		State: state,
		Days:  h.orderService.EstimateDelivery(state),
	})
}
