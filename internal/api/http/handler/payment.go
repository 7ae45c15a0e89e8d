package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// PaymentService defines the provider handshake operations.
type PaymentService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, amountRupees float64) (model.PaymentOrder, error)
	Verify(ctx context.Context, verification model.PaymentVerification) error
}

// Payment handles the /api/payments endpoints.
type Payment struct {
	paymentService PaymentService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPayment creates a new Payment handler.
func NewPayment(paymentService PaymentService, contextManager model.ContextManager, logger *logger.Logger) *Payment {
	return &Payment{
		paymentService: paymentService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createPaymentOrderRequest struct {
	Amount float64 `json:"amount"`
}

type paymentOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder handles POST /api/payments/create-order.
func (h *Payment) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	var req createPaymentOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.paymentService.CreateOrder(r.Context(), userID, req.Amount)
	if err != nil {
		h.logger.Error("Payment handler: create order failed",
			"user_id", userID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, paymentOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

type verifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// Verify handles POST /api/payments/verify.
func (h *Payment) Verify(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.contextManager.GetUserIDFromContext(r.Context()); !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	var req verifyPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.paymentService.Verify(r.Context(), model.PaymentVerification{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	}); err != nil {
		WriteError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "payment verified")
}
