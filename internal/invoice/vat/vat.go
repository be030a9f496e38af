// Package vat implements the fixed-rate South African VAT calculation.
package vat

// Rate is the standard South African VAT rate.
const Rate = 0.15

// Breakdown holds the VAT amount and VAT-inclusive total for a given
// VAT-exclusive amount.
type Breakdown struct {
	VATAmount    float64
	TotalInclVAT float64
}

// Calculate computes the 15% VAT breakdown for a VAT-exclusive total.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
// Negative inputs are not rejected here; validation is the caller's concern.
func Calculate(totalExclVAT float64) Breakdown {
	vatAmount := totalExclVAT * Rate
	return Breakdown{
		VATAmount:    vatAmount,
		TotalInclVAT: totalExclVAT + vatAmount,
	}
}
