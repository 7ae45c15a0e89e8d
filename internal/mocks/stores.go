// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/thevanityindia/vanity-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// AddressStore is a mock of model.AddressStore.
type AddressStore struct {
	mock.Mock
}

func (m *AddressStore) Create(ctx context.Context, address model.Address) (model.Address, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(model.Address), args.Error(1)
}

func (m *AddressStore) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Address), args.Error(1)
}

func (m *AddressStore) GetByID(ctx context.Context, id uuid.UUID) (model.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Address), args.Error(1)
}

func (m *AddressStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PasscodeStore is a mock of model.PasscodeStore.
type PasscodeStore struct {
	mock.Mock
}

func (m *PasscodeStore) Upsert(ctx context.Context, passcode model.Passcode) error {
	args := m.Called(ctx, passcode)
	return args.Error(0)
}

func (m *PasscodeStore) GetByEmail(ctx context.Context, email string) (model.Passcode, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Passcode), args.Error(1)
}

func (m *PasscodeStore) Consume(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// ProductStore is a mock of model.ProductStore.
type ProductStore struct {
	mock.Mock
}

func (m *ProductStore) Create(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductStore) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductStore) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *ProductStore) Update(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CartStore is a mock of model.CartStore.
type CartStore struct {
	mock.Mock
}

func (m *CartStore) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *CartStore) AddLine(ctx context.Context, userID uuid.UUID, line model.CartLine) (model.Cart, error) {
	args := m.Called(ctx, userID, line)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *CartStore) UpdateLineQuantity(ctx context.Context, userID uuid.UUID, lineID uuid.UUID, quantity int) (model.Cart, error) {
	args := m.Called(ctx, userID, lineID, quantity)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *CartStore) RemoveLine(ctx context.Context, userID uuid.UUID, lineID uuid.UUID) (model.Cart, error) {
	args := m.Called(ctx, userID, lineID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *CartStore) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// WishlistStore is a mock of model.WishlistStore.
type WishlistStore struct {
	mock.Mock
}

func (m *WishlistStore) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Wishlist, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Wishlist), args.Error(1)
}

func (m *WishlistStore) Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error) {
	args := m.Called(ctx, userID, productID)
	return args.Get(0).(model.Wishlist), args.Error(1)
}

func (m *WishlistStore) Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (model.Wishlist, error) {
	args := m.Called(ctx, userID, productID)
	return args.Get(0).(model.Wishlist), args.Error(1)
}

// OrderStore is a mock of model.OrderStore.
type OrderStore struct {
	mock.Mock
}

func (m *OrderStore) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *OrderStore) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *OrderStore) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}
