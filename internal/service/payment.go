package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// Payment runs the three-legged provider handshake: create a provider
// order, let the client drive the hosted payment UI, verify the callback
// signature before any order is finalized.
type Payment struct {
	gateway   model.PaymentGateway
	keySecret string
	logger    *logger.Logger
}

func NewPayment(gateway model.PaymentGateway, keySecret string, logger *logger.Logger) *Payment {
	return &Payment{
		gateway:   gateway,
		keySecret: keySecret,
		logger:    logger,
	}
}

// CreateOrder opens a provider order record for the given rupee amount.
// No storefront order exists until verification succeeds; abandoning the
// hosted UI after this step leaves nothing behind.
func (s *Payment) CreateOrder(ctx context.Context, userID uuid.UUID, amountRupees float64) (model.PaymentOrder, error) {
	if s.gateway == nil {
		return model.PaymentOrder{}, model.NewErrValidation("online payments are not configured")
	}
	if amountRupees <= 0 {
		return model.PaymentOrder{}, model.NewErrValidation("amount must be positive")
	}

	amountPaise := int64(math.Round(amountRupees * 100))
	receipt := fmt.Sprintf("rcpt_%s", uuid.New())

	order, err := s.gateway.CreateOrder(ctx, amountPaise, "INR", receipt)
	if err != nil {
		return model.PaymentOrder{}, fmt.Errorf("failed to create provider order: %w", err)
	}

	s.logger.Info("Payment service: provider order created",
		"user_id", userID,
		"provider_order_id", order.ID,
		"amount_paise", order.Amount)

	return order, nil
}

// Verify checks the provider callback signature. Failure is a hard stop:
// the caller must not submit an order.
func (s *Payment) Verify(_ context.Context, verification model.PaymentVerification) error {
	if verification.OrderID == "" || verification.PaymentID == "" || verification.Signature == "" {
		return model.NewErrPaymentVerificationFailed()
	}

	expected := signPayment(s.keySecret, verification.OrderID, verification.PaymentID)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(verification.Signature)) != 1 {
		s.logger.Info("Payment service: signature mismatch",
			"provider_order_id", verification.OrderID)
		return model.NewErrPaymentVerificationFailed()
	}

	s.logger.Info("Payment service: payment verified",
		"provider_order_id", verification.OrderID,
		"payment_id", verification.PaymentID)

	return nil
}

// signPayment computes the provider's callback signature: hex-encoded
// HMAC-SHA256 of "<orderID>|<paymentID>" keyed with the key secret.
func signPayment(keySecret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
