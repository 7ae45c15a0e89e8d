package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thevanityindia/vanity-server/internal/mocks"
	"github.com/thevanityindia/vanity-server/internal/model"
	"github.com/thevanityindia/vanity-server/internal/testutil"
)

func providerSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPayment_CreateOrder_ConvertsToPaise(t *testing.T) {
	gateway := &mocks.PaymentGateway{}
	gateway.On("CreateOrder", mock.Anything, int64(59900), "INR", mock.Anything).Return(model.PaymentOrder{
		ID:       "order_abc",
		Amount:   59900,
		Currency: "INR",
	}, nil)

	s := NewPayment(gateway, "secret", testutil.MakeNoopLogger())

	order, err := s.CreateOrder(context.Background(), uuid.New(), 599.00)
	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	gateway.AssertExpectations(t)
}

func TestPayment_CreateOrder_NotConfigured(t *testing.T) {
	s := NewPayment(nil, "secret", testutil.MakeNoopLogger())

	_, err := s.CreateOrder(context.Background(), uuid.New(), 100)

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestPayment_CreateOrder_RejectsNonPositiveAmount(t *testing.T) {
	s := NewPayment(&mocks.PaymentGateway{}, "secret", testutil.MakeNoopLogger())

	_, err := s.CreateOrder(context.Background(), uuid.New(), 0)
	require.Error(t, err)
}

func TestPayment_Verify_Success(t *testing.T) {
	s := NewPayment(&mocks.PaymentGateway{}, "secret", testutil.MakeNoopLogger())

	err := s.Verify(context.Background(), model.PaymentVerification{
		OrderID:   "order_abc",
		PaymentID: "pay_xyz",
		Signature: providerSignature("secret", "order_abc", "pay_xyz"),
	})
	require.NoError(t, err)
}

func TestPayment_Verify_BadSignature(t *testing.T) {
	s := NewPayment(&mocks.PaymentGateway{}, "secret", testutil.MakeNoopLogger())

	err := s.Verify(context.Background(), model.PaymentVerification{
		OrderID:   "order_abc",
		PaymentID: "pay_xyz",
		Signature: providerSignature("wrong-secret", "order_abc", "pay_xyz"),
	})

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestPayment_Verify_MissingFields(t *testing.T) {
	s := NewPayment(&mocks.PaymentGateway{}, "secret", testutil.MakeNoopLogger())

	err := s.Verify(context.Background(), model.PaymentVerification{
		OrderID: "order_abc",
	})
	require.Error(t, err)
}
