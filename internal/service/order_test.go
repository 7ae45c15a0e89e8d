package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thevanityindia/vanity-server/internal/mocks"
	"github.com/thevanityindia/vanity-server/internal/model"
	"github.com/thevanityindia/vanity-server/internal/testutil"
)

func TestOrder_Place_EmptyCart(t *testing.T) {
	orderStore := &mocks.OrderStore{}
	cartStore := &mocks.CartStore{}
	addressStore := &mocks.AddressStore{}
	userID := uuid.New()
	addressID := uuid.New()

	addressStore.On("GetByID", mock.Anything, addressID).Return(model.Address{ID: addressID, UserID: userID}, nil)
	cartStore.On("GetByUserID", mock.Anything, userID).Return(model.Cart{UserID: userID}, nil)

	s := NewOrder(orderStore, cartStore, &mocks.ProductStore{}, addressStore, testutil.MakeNoopLogger())

	_, err := s.Place(context.Background(), model.CreateOrderParams{
		UserID:        userID,
		AddressID:     addressID,
		PaymentMethod: model.PaymentMethodCOD,
	})

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	orderStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrder_Place_ForeignAddress(t *testing.T) {
	addressStore := &mocks.AddressStore{}
	addressID := uuid.New()

	addressStore.On("GetByID", mock.Anything, addressID).Return(model.Address{
		ID:     addressID,
		UserID: uuid.New(), // someone else's
	}, nil)

	s := NewOrder(&mocks.OrderStore{}, &mocks.CartStore{}, &mocks.ProductStore{}, addressStore, testutil.MakeNoopLogger())

	_, err := s.Place(context.Background(), model.CreateOrderParams{
		UserID:        uuid.New(),
		AddressID:     addressID,
		PaymentMethod: model.PaymentMethodCOD,
	})

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestOrder_Place_OnlineRequiresPaymentID(t *testing.T) {
	s := NewOrder(&mocks.OrderStore{}, &mocks.CartStore{}, &mocks.ProductStore{}, &mocks.AddressStore{}, testutil.MakeNoopLogger())

	_, err := s.Place(context.Background(), model.CreateOrderParams{
		UserID:        uuid.New(),
		AddressID:     uuid.New(),
		PaymentMethod: model.PaymentMethodOnline,
	})

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestOrder_Place_SnapshotsCartAndClears(t *testing.T) {
	orderStore := &mocks.OrderStore{}
	cartStore := &mocks.CartStore{}
	productStore := &mocks.ProductStore{}
	addressStore := &mocks.AddressStore{}
	userID := uuid.New()
	addressID := uuid.New()
	productA := model.Product{ID: uuid.New(), Brand: "Lakme", Name: "Kajal", Price: 249.50}
	productB := model.Product{ID: uuid.New(), Brand: "Maybelline", Name: "Mascara", Price: 599}

	addressStore.On("GetByID", mock.Anything, addressID).Return(model.Address{ID: addressID, UserID: userID, State: "Delhi"}, nil)
	cartStore.On("GetByUserID", mock.Anything, userID).Return(model.Cart{
		UserID: userID,
		Lines: []model.CartLine{
			{ID: uuid.New(), ProductID: productA.ID, Quantity: 2},
			{ID: uuid.New(), ProductID: productB.ID, Quantity: 1},
		},
	}, nil)
	productStore.On("GetByID", mock.Anything, productA.ID).Return(productA, nil)
	productStore.On("GetByID", mock.Anything, productB.ID).Return(productB, nil)
	orderStore.On("Create", mock.Anything, mock.MatchedBy(func(order model.Order) bool {
		return order.UserID == userID &&
			len(order.Items) == 2 &&
			order.Total == 1098.00 &&
			order.Status == model.OrderStatusPlaced
	})).Return(model.Order{ID: uuid.New(), UserID: userID, Total: 1098.00, Status: model.OrderStatusPlaced}, nil)
	cartStore.On("Clear", mock.Anything, userID).Return(nil)

	s := NewOrder(orderStore, cartStore, productStore, addressStore, testutil.MakeNoopLogger())

	order, err := s.Place(context.Background(), model.CreateOrderParams{
		UserID:        userID,
		AddressID:     addressID,
		PaymentMethod: model.PaymentMethodCOD,
	})
	require.NoError(t, err)
	assert.Equal(t, 1098.00, order.Total)
	cartStore.AssertCalled(t, "Clear", mock.Anything, userID)
}

func TestOrder_EstimateDelivery(t *testing.T) {
	s := NewOrder(&mocks.OrderStore{}, &mocks.CartStore{}, &mocks.ProductStore{}, &mocks.AddressStore{}, testutil.MakeNoopLogger())

	assert.Equal(t, 2, s.EstimateDelivery("Delhi"))
	assert.Equal(t, 5, s.EstimateDelivery("  tamil nadu "))
	assert.Equal(t, defaultLeadTimeDays, s.EstimateDelivery("Narnia"))
}
