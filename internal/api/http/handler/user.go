package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
	"github.com/thevanityindia/vanity-server/internal/service"
)

// UserService defines the profile and address-book operations.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (model.User, error)
	AddAddress(ctx context.Context, userID uuid.UUID, params service.AddAddressParams) (model.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]model.Address, error)
	RemoveAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error
}

// User handles the /api/users endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// GetProfile handles GET /api/users/profile.
func (h *User) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toUserDTO(user))
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// UpdateProfile handles PUT /api/users/profile.
func (h *User) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Name == "" {
		WriteError(w, model.NewErrValidation("name is required"))
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, req.Name)
	if err != nil {
		h.logger.Error("User handler: profile update failed",
			"user_id", userID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toUserDTO(user))
}

type addAddressRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// AddAddress handles POST /api/users/addresses.
func (h *User) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	var req addAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	address, err := h.userService.AddAddress(r.Context(), userID, service.AddAddressParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Line1:   req.Line1,
		Line2:   req.Line2,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toAddressDTO(address))
}

// ListAddresses handles GET /api/users/addresses.
func (h *User) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	addresses, err := h.userService.ListAddresses(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeData(w, http.StatusOK, toAddressDTOs(addresses))
}

// RemoveAddress handles DELETE /api/users/addresses/{id}.
func (h *User) RemoveAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, model.NewErrMissingAuthorizationToken())
		return
	}

	addressID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, model.NewErrValidation("invalid address id"))
		return
	}

	if err := h.userService.RemoveAddress(r.Context(), userID, addressID); err != nil {
		WriteError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "address removed")
}
