package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// User serves the profile and address book operations.
type User struct {
	userStore    model.UserStore
	addressStore model.AddressStore
	logger       *logger.Logger
}

func NewUser(userStore model.UserStore, addressStore model.AddressStore, logger *logger.Logger) *User {
	return &User{
		userStore:    userStore,
		addressStore: addressStore,
		logger:       logger,
	}
}

func (s *User) GetProfile(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (s *User) UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (model.User, error) {
	user, err := s.userStore.Update(ctx, model.User{ID: userID, Name: name})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: profile updated",
		"user_id", userID)

	return user, nil
}

// AddAddressParams contains the fields for a new address-book entry.
type AddAddressParams struct {
	Name    string
	Phone   string
	Line1   string
	Line2   string
	City    string
	State   string
	Pincode string
}

func (s *User) AddAddress(ctx context.Context, userID uuid.UUID, params AddAddressParams) (model.Address, error) {
	if err := validateAddress(params); err != nil {
		return model.Address{}, err
	}

	address, err := s.addressStore.Create(ctx, model.Address{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      params.Name,
		Phone:     params.Phone,
		Line1:     params.Line1,
		Line2:     params.Line2,
		City:      params.City,
		State:     params.State,
		Pincode:   params.Pincode,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return model.Address{}, fmt.Errorf("failed to create address: %w", err)
	}

	s.logger.Info("User service: address added",
		"user_id", userID,
		"address_id", address.ID)

	return address, nil
}

func (s *User) ListAddresses(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	addresses, err := s.addressStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses: %w", err)
	}
	return addresses, nil
}

// RemoveAddress deletes an address after checking ownership. Deleting an
// address that does not exist or belongs to someone else reports not found.
func (s *User) RemoveAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error {
	address, err := s.addressStore.GetByID(ctx, addressID)
	if err != nil {
		return fmt.Errorf("failed to get address by id: %w", err)
	}
	if address.UserID != userID {
		return model.ErrNotFound
	}

	if err := s.addressStore.Delete(ctx, addressID); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return nil
}

func validateAddress(params AddAddressParams) error {
	if params.Name == "" {
		return model.NewErrValidation("name is required")
	}
	if len(params.Phone) != 10 {
		return model.NewErrValidation("phone must be 10 digits")
	}
	if params.Line1 == "" {
		return model.NewErrValidation("address line is required")
	}
	if params.City == "" {
		return model.NewErrValidation("city is required")
	}
	if params.State == "" {
		return model.NewErrValidation("state is required")
	}
	if len(params.Pincode) != 6 {
		return model.NewErrValidation("pincode must be 6 digits")
	}
	return nil
}
