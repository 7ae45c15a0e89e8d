package model

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned by stores when a requested entity does not
// exist.
var ErrNotFound = errors.New("not found")

var (
	ErrPasscodeExpired  = errors.New("passcode expired")
	ErrPasscodeConsumed = errors.New("passcode already used")
	ErrPasscodeMismatch = errors.New("passcode mismatch")
)

// APIError carries an HTTP status and a message safe to show to the
// client. Errors of any other type surface as a generic 500.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrValidation reports a malformed or rejected request payload.
func NewErrValidation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewErrMissingAuthorizationToken reports an absent bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "missing authorization token"}
}

// NewErrInvalidAuthorizationToken reports an expired or forged bearer
// token.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "invalid authorization token"}
}

// NewErrAdminOnly reports an authenticated user lacking the admin role.
func NewErrAdminOnly() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "admin access required"}
}

// NewErrInvalidPasscode reports a wrong, expired or reused sign-in
// passcode. The message is deliberately uniform across those cases.
func NewErrInvalidPasscode() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "invalid or expired passcode"}
}

// NewErrProductNotFound reports a missing catalog product.
func NewErrProductNotFound(id string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "product not found: " + id}
}

// NewErrPaymentVerificationFailed reports a provider callback whose
// signature did not check out.
func NewErrPaymentVerificationFailed() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "payment verification failed"}
}
