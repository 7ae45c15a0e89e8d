package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// WishlistService defines server-side wishlist operations.
type WishlistService interface {
	Get(ctx context.Context, userID uuid.UUID) (model.Wishlist, error)
	Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error)
	Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error)
}

// Wishlist handles the /api/wishlist endpoints.
type Wishlist struct {
	wishlistService WishlistService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewWishlist creates a new Wishlist handler.
func NewWishlist(wishlistService WishlistService, contextManager model.ContextManager, logger *logger.Logger) *Wishlist {
	return &Wishlist{
		wishlistService: wishlistService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Get handles GET /api/wishlist.
func (h *Wishlist) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	wishlist, err := h.wishlistService.Get(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toWishlistDTO(wishlist))
}

type addWishlistRequest struct {
	ProductID string `json:"productId"`
}

// Add handles POST /api/wishlist.
func (h *Wishlist) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	var req addWishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid product id"))
		return
	}

	wishlist, err := h.wishlistService.Add(r.Context(), userID, productID)
	if err != nil {
		h.logger.Error("Wishlist handler: add failed",
			"user_id", userID,
			"product_id", productID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toWishlistDTO(wishlist))
}

// Remove handles DELETE /api/wishlist/{productId}.
func (h *Wishlist) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid product id"))
		return
	}

	wishlist, err := h.wishlistService.Remove(r.Context(), userID, productID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toWishlistDTO(wishlist))
}
