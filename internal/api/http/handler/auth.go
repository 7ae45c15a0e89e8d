package handler

import (
	"context"
	"net/http"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// AuthService defines the passcode sign-in operations.
type AuthService interface {
	RequestPasscode(ctx context.Context, email string) error
	VerifyPasscode(ctx context.Context, email, code string) (string, model.User, error)
}

// Auth handles the /api/auth endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

// SendOTP handles POST /api/auth/send-otp.
func (h *Auth) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authService.RequestPasscode(r.Context(), req.Email); err != nil {
		h.logger.Error("Auth handler: passcode request failed",
			"email", req.Email,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "passcode sent")
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *Auth) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	token, user, err := h.authService.VerifyPasscode(r.Context(), req.Email, req.OTP)
	if err != nil {
		h.logger.Error("Auth handler: passcode verification failed",
			"email", req.Email,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "signed in",
		Token:   token,
		User:    toUserDTO(user),
	})
}
