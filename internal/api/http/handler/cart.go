package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// CartService defines server-side cart operations.
type CartService interface {
	Get(ctx context.Context, userID uuid.UUID) (model.Cart, error)
	Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (model.Cart, error)
	SetQuantity(ctx context.Context, userID uuid.UUID, lineID uuid.UUID, quantity int) (model.Cart, error)
	Remove(ctx context.Context, userID uuid.UUID, lineID uuid.UUID) (model.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) (model.Cart, error)
}

// Cart handles the /api/cart endpoints. Every response carries the full
// updated cart document.
type Cart struct {
	cartService    CartService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewCart creates a new Cart handler.
func NewCart(cartService CartService, contextManager model.ContextManager, logger *logger.Logger) *Cart {
	return &Cart{
		cartService:    cartService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Get handles GET /api/cart.
func (h *Cart) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	cart, err := h.cartService.Get(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toCartDTO(cart))
}

type addCartLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Add handles POST /api/cart.
func (h *Cart) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	var req addCartLineRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid product id"))
		return
	}

	cart, err := h.cartService.Add(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		h.logger.Error("Cart handler: add failed",
			"user_id", userID,
			"product_id", productID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toCartDTO(cart))
}

type updateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

// Update handles PUT /api/cart/{lineId}.
func (h *Cart) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid line id"))
		return
	}

	var req updateCartLineRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.cartService.SetQuantity(r.Context(), userID, lineID, req.Quantity)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toCartDTO(cart))
}

// Remove handles DELETE /api/cart/{lineId}.
func (h *Cart) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid line id"))
		return
	}

	cart, err := h.cartService.Remove(r.Context(), userID, lineID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toCartDTO(cart))
}

// Clear handles DELETE /api/cart.
func (h *Cart) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	cart, err := h.cartService.Clear(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toCartDTO(cart))
}
