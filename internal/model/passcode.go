package model

import (
	"context"
	"time"
)

// PasscodeDuration is the TTL for an issued sign-in passcode.
const PasscodeDuration = time.Minute * 10

// PasscodeStore persists pending sign-in passcodes. At most one active
// passcode exists per email; issuing a new one replaces the old.
type PasscodeStore interface {
	Upsert(ctx context.Context, passcode Passcode) error
	GetByEmail(ctx context.Context, email string) (Passcode, error)
	Consume(ctx context.Context, email string) error
}

// Passcode is a single-use numeric sign-in code emailed to a user.
type Passcode struct {
	Email     string
	Code      string
	ExpiresAt time.Time
	Consumed  bool
	CreatedAt time.Time
}
