// Package domain contains persistence models and contracts for invoicing.
package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// LineItem is one billable line on an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Invoice represents a SARS-compliant tax invoice.
type Invoice struct {
	ID            string         `gorm:"type:varchar(36);primaryKey"`
	BusinessID    string         `gorm:"type:varchar(36);not null;index"`
	InvoiceNumber string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	ClientName    string         `gorm:"type:varchar(255);not null"`
	ClientVAT     *string        `gorm:"type:varchar(20)"`
	TotalExclVAT  float64        `gorm:"not null"`
	VATAmount     float64        `gorm:"not null"`
	TotalInclVAT  float64        `gorm:"not null"`
	IssuedDate    time.Time      `gorm:"not null"`
	DueDate       *time.Time     `gorm:""`
	Items         datatypes.JSON `gorm:"type:json"`
	IsPaid        bool           `gorm:"not null;default:false"`
	PaidDate      *time.Time     `gorm:""`
	CreatedAt     time.Time      `gorm:"not null"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// LineItems decodes the stored items column. An empty column decodes to nil.
func (i Invoice) LineItems() ([]LineItem, error) {
	if len(i.Items) == 0 {
		return nil, nil
	}
	var items []LineItem
	if err := json.Unmarshal(i.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// View is the flat JSON representation served over HTTP. Date fields render
// as RFC 3339 strings or null; items round-trip the stored sequence verbatim.
type View struct {
	ID            string     `json:"id"`
	BusinessID    string     `json:"business_id"`
	InvoiceNumber string     `json:"invoice_number"`
	ClientName    string     `json:"client_name"`
	ClientVAT     *string    `json:"client_vat"`
	TotalExclVAT  float64    `json:"total_excl_vat"`
	VATAmount     float64    `json:"vat_amount"`
	TotalInclVAT  float64    `json:"total_incl_vat"`
	IssuedDate    *time.Time `json:"issued_date"`
	DueDate       *time.Time `json:"due_date"`
	Items         []LineItem `json:"items"`
	IsPaid        bool       `json:"is_paid"`
	PaidDate      *time.Time `json:"paid_date"`
	CreatedAt     *time.Time `json:"created_at"`
}

// ToView serializes an invoice for HTTP responses.
func (i Invoice) ToView() (View, error) {
	items, err := i.LineItems()
	if err != nil {
		return View{}, err
	}

	view := View{
		ID:            i.ID,
		BusinessID:    i.BusinessID,
		InvoiceNumber: i.InvoiceNumber,
		ClientName:    i.ClientName,
		ClientVAT:     i.ClientVAT,
		TotalExclVAT:  i.TotalExclVAT,
		VATAmount:     i.VATAmount,
		TotalInclVAT:  i.TotalInclVAT,
		DueDate:       i.DueDate,
		Items:         items,
		IsPaid:        i.IsPaid,
		PaidDate:      i.PaidDate,
	}
	if !i.IssuedDate.IsZero() {
		issued := i.IssuedDate
		view.IssuedDate = &issued
	}
	if !i.CreatedAt.IsZero() {
		created := i.CreatedAt
		view.CreatedAt = &created
	}
	return view, nil
}
