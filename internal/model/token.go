package model

import "github.com/google/uuid"

// TokenManager issues and validates signed session tokens.
type TokenManager interface {
	GenerateSessionToken(userID uuid.UUID) (string, error)
	ParseSessionToken(tokenString string) (uuid.UUID, error)
}
