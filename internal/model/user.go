package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role describes what a user is allowed to do.
type Role string

const (
	// RoleCustomer is a regular shopper.
	RoleCustomer Role = "customer"
	// RoleAdmin may manage the product catalog.
	RoleAdmin Role = "admin"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
}

// User represents a principal: the identity of a signed-in shopper.
// Created on the first successful passcode verification for a previously
// unseen email, looked up by email thereafter.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddressStore defines persistence operations for the address book.
type AddressStore interface {
	Create(ctx context.Context, address Address) (Address, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Address, error)
	GetByID(ctx context.Context, id uuid.UUID) (Address, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Address is a shipping address in a user's address book.
type Address struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Phone     string
	Line1     string
	Line2     string
	City      string
	State     string
	Pincode   string
	CreatedAt time.Time
}
