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

func TestCart_Add_UnknownProduct(t *testing.T) {
	productStore := &mocks.ProductStore{}
	cartStore := &mocks.CartStore{}
	productID := uuid.New()

	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{}, model.ErrNotFound)

	s := NewCart(cartStore, productStore, testutil.MakeNoopLogger())

	_, err := s.Add(context.Background(), uuid.New(), productID, 1)

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	cartStore.AssertNotCalled(t, "AddLine", mock.Anything, mock.Anything, mock.Anything)
}

func TestCart_Add_ClampsQuantity(t *testing.T) {
	productStore := &mocks.ProductStore{}
	cartStore := &mocks.CartStore{}
	userID := uuid.New()
	productID := uuid.New()

	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{ID: productID}, nil)
	cartStore.On("AddLine", mock.Anything, userID, mock.MatchedBy(func(line model.CartLine) bool {
		return line.ProductID == productID && line.Quantity == 1
	})).Return(model.Cart{UserID: userID}, nil)

	s := NewCart(cartStore, productStore, testutil.MakeNoopLogger())

	_, err := s.Add(context.Background(), userID, productID, 0)
	require.NoError(t, err)
	cartStore.AssertExpectations(t)
}

func TestCart_SetQuantity_Floor(t *testing.T) {
	cartStore := &mocks.CartStore{}
	userID := uuid.New()
	lineID := uuid.New()

	cartStore.On("UpdateLineQuantity", mock.Anything, userID, lineID, 1).Return(model.Cart{UserID: userID}, nil)

	s := NewCart(cartStore, &mocks.ProductStore{}, testutil.MakeNoopLogger())

	_, err := s.SetQuantity(context.Background(), userID, lineID, -3)
	require.NoError(t, err)
	cartStore.AssertExpectations(t)
}

func TestCart_SetQuantity_LineNotFound(t *testing.T) {
	cartStore := &mocks.CartStore{}
	userID := uuid.New()
	lineID := uuid.New()

	cartStore.On("UpdateLineQuantity", mock.Anything, userID, lineID, 2).Return(model.Cart{}, model.ErrNotFound)

	s := NewCart(cartStore, &mocks.ProductStore{}, testutil.MakeNoopLogger())

	_, err := s.SetQuantity(context.Background(), userID, lineID, 2)

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestCart_Remove_AbsentLineIsNoOp(t *testing.T) {
	cartStore := &mocks.CartStore{}
	userID := uuid.New()
	lineID := uuid.New()
	unchanged := model.Cart{UserID: userID, Lines: []model.CartLine{{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2}}}

	cartStore.On("RemoveLine", mock.Anything, userID, lineID).Return(unchanged, nil)

	s := NewCart(cartStore, &mocks.ProductStore{}, testutil.MakeNoopLogger())

	cart, err := s.Remove(context.Background(), userID, lineID)
	require.NoError(t, err)
	assert.Equal(t, unchanged, cart)
}

func TestCart_Clear(t *testing.T) {
	cartStore := &mocks.CartStore{}
	userID := uuid.New()

	cartStore.On("Clear", mock.Anything, userID).Return(nil)

	s := NewCart(cartStore, &mocks.ProductStore{}, testutil.MakeNoopLogger())

	cart, err := s.Clear(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}
