package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type GenerateRequest struct {
	BusinessID string
	ClientName string
	Items      []LineItem
	ClientVAT  *string
	DueDate    *time.Time
}

type Service interface {
	// Generate provisions the demo tenant when needed, computes VAT totals,
	// assigns a fresh invoice number and persists the invoice. Provisioning
	// and insert run in one transaction.
	Generate(ctx context.Context, req GenerateRequest) (View, error)

	// List returns the invoices belonging to the given business in
	// insertion order.
	List(ctx context.Context, businessID string) ([]View, error)

	GetByID(ctx context.Context, invoiceID string) (View, error)

	// MarkPaid transitions an invoice to paid and stamps the payment date.
	MarkPaid(ctx context.Context, invoiceID string) (View, error)

	// RenderPDF renders the invoice as a PDF document.
	RenderPDF(ctx context.Context, invoiceID string) ([]byte, string, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Invoice, error)
	ListByBusiness(ctx context.Context, db *gorm.DB, businessID string) ([]Invoice, error)
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) error
}

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrNotFound        = errors.New("not_found")
	ErrNumberCollision = errors.New("invoice_number_collision")
)
