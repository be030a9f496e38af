// Package format builds human-readable invoice numbers.
package format

import (
	"fmt"
	"time"
)

// InvoiceNumber formats the invoice number for an issue instant:
// "INV-" followed by the Unix-epoch milliseconds of issuedAt.
//
// Uniqueness is probabilistic at millisecond resolution; the unique index on
// invoices.invoice_number is the actual correctness backstop.
func InvoiceNumber(issuedAt time.Time) string {
	return fmt.Sprintf("INV-%d", issuedAt.UnixMilli())
}
