package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// Auth implements the two-step email passcode sign-in flow.
type Auth struct {
	userStore     model.UserStore
	passcodeStore model.PasscodeStore
	mailSender    model.EmailSender
	tokenManager  model.TokenManager
	logger        *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	passcodeStore model.PasscodeStore,
	mailSender model.EmailSender,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:     userStore,
		passcodeStore: passcodeStore,
		mailSender:    mailSender,
		tokenManager:  tokenManager,
		logger:        logger,
	}
}

// RequestPasscode issues a single-use numeric code for the email and
// hands it to the mail collaborator. Re-requesting replaces any
// previously issued code for the same email.
func (a *Auth) RequestPasscode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return model.NewErrValidation("email is required")
	}

	code, err := generatePasscode()
	if err != nil {
		return fmt.Errorf("failed to generate passcode: %w", err)
	}

	now := time.Now()
	passcode := model.Passcode{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(model.PasscodeDuration),
		CreatedAt: now,
	}

	if err := a.passcodeStore.Upsert(ctx, passcode); err != nil {
		a.logger.Error("Auth service: failed to store passcode",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to store passcode: %w", err)
	}

	body := fmt.Sprintf("Your sign-in code is %s. It expires in %d minutes.",
		code, int(model.PasscodeDuration.Minutes()))
	if err := a.mailSender.Send(ctx, email, "Your sign-in code", body); err != nil {
		a.logger.Error("Auth service: failed to send passcode",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send passcode: %w", err)
	}

	a.logger.Info("Auth service: passcode issued",
		"email", email)

	return nil
}

// VerifyPasscode checks the submitted code, consumes it, creates a user
// for a previously unseen email and issues a signed session token.
func (a *Auth) VerifyPasscode(ctx context.Context, email, code string) (string, model.User, error) {
	email = normalizeEmail(email)

	passcode, err := a.passcodeStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.User{}, model.NewErrInvalidPasscode()
	}
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to get passcode: %w", err)
	}

	if err := validatePasscode(passcode, code, time.Now()); err != nil {
		a.logger.Info("Auth service: passcode rejected",
			"email", email,
			"reason", err.Error())
		return "", model.User{}, model.NewErrInvalidPasscode()
	}

	if err := a.passcodeStore.Consume(ctx, email); err != nil {
		return "", model.User{}, fmt.Errorf("failed to consume passcode: %w", err)
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		now := time.Now()
		user, err = a.userStore.Create(ctx, model.User{
			ID:        uuid.New(),
			Email:     email,
			Role:      model.RoleCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return "", model.User{}, fmt.Errorf("failed to create user: %w", err)
		}
		a.logger.Info("Auth service: new user created",
			"email", email,
			"user_id", user.ID)
	} else if err != nil {
		return "", model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	token, err := a.tokenManager.GenerateSessionToken(user.ID)
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: sign-in completed",
		"email", email,
		"user_id", user.ID)

	return token, user, nil
}

// GetUserID resolves a bearer token to a user id; used by middleware.
func (a *Auth) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	return a.tokenManager.ParseSessionToken(token)
}

func validatePasscode(stored model.Passcode, presented string, now time.Time) error {
	if stored.Consumed {
		return model.ErrPasscodeConsumed
	}
	if now.After(stored.ExpiresAt) {
		return model.ErrPasscodeExpired
	}
	if stored.Code != presented {
		return model.ErrPasscodeMismatch
	}
	return nil
}

func generatePasscode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
