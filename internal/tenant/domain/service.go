package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Demo tenant identity used when an invoice references an unknown business.
const (
	DemoUserID        = "demo-user-001"
	DemoUserEmail     = "demo@smartbiz.co.za"
	DemoUserName      = "Demo User"
	DemoBusinessName  = "SmartBiz Demo"
	DemoBusinessVAT   = "4123456789"
	DefaultBusinessID = "demo-business-001"
)

var ErrNotFound = errors.New("not_found")

type Service interface {
	// EnsureDefaultTenant makes sure a business with the given id exists,
	// provisioning the demo user and a demo business inside tx when it does
	// not. Idempotent; the demo user is keyed by email.
	EnsureDefaultTenant(ctx context.Context, tx *gorm.DB, businessID string) (*Business, error)

	GetBusiness(ctx context.Context, businessID string) (*Business, error)
}

type Repository interface {
	FindBusinessByID(ctx context.Context, db *gorm.DB, id string) (*Business, error)
	FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	InsertUser(ctx context.Context, db *gorm.DB, user *User) error
	InsertBusiness(ctx context.Context, db *gorm.DB, business *Business) error
}
