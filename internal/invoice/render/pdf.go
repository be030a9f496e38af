// Package render produces the fixed-layout tax invoice PDF.
package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Item is one rendered table line. Line amounts are recomputed from quantity
// and unit price rather than trusted from a stored total.
type Item struct {
	Description string
	Quantity    int
	UnitPrice   float64
}

// Input carries everything the invoice layout needs.
type Input struct {
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	BusinessName  string
	BusinessVAT   string
	ClientName    string
	ClientVAT     string
	Items         []Item
	TotalExclVAT  float64
	VATAmount     float64
	TotalInclVAT  float64
}

const complianceNote = "This is a SARS-compliant tax invoice. VAT Registration Number displayed above."

type Renderer interface {
	Render(input Input) ([]byte, error)
}

type pdfRenderer struct{}

func New() Renderer {
	return &pdfRenderer{}
}

// Render builds the document. Deterministic given the same input; no caching.
func (r *pdfRenderer) Render(input Input) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "TAX INVOICE", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(16,
		col.New(12).Add(
			text.New("Invoice #: "+input.InvoiceNumber, props.Text{Top: 0, Size: 10}),
			text.New("Date: "+input.IssueDate, props.Text{Top: 5, Size: 10}),
		),
	)
	if input.DueDate != "" {
		m.AddRow(6,
			text.NewCol(12, "Due Date: "+input.DueDate, props.Text{Size: 10}),
		)
	}

	m.AddRow(22,
		col.New(6).Add(
			text.New("From", props.Text{Style: fontstyle.Bold, Size: 10}),
			text.New(input.BusinessName, props.Text{Top: 5, Size: 10}),
			text.New(vatLine(input.BusinessVAT), props.Text{Top: 10, Size: 9}),
		),
		col.New(6).Add(
			text.New("Bill To", props.Text{Style: fontstyle.Bold, Size: 10}),
			text.New(input.ClientName, props.Text{Top: 5, Size: 10}),
			text.New(vatLine(input.ClientVAT), props.Text{Top: 10, Size: 9}),
		),
	)

	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range input.Items {
		amount := float64(item.Quantity) * item.UnitPrice
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(item.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(amount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(6),
		text.NewCol(4, "Subtotal (excl. VAT)", props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, money(input.TotalExclVAT), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(6),
		text.NewCol(4, "VAT (15%)", props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, money(input.VATAmount), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(6),
		text.NewCol(4, "Total (incl. VAT)", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, money(input.TotalInclVAT), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	m.AddRow(12,
		text.NewCol(12, complianceNote, props.Text{Size: 8, Style: fontstyle.Italic, Top: 4}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// money formats a monetary amount with the local currency prefix.
func money(amount float64) string {
	return fmt.Sprintf("R %.2f", amount)
}

func vatLine(vat string) string {
	if vat == "" {
		return ""
	}
	return "VAT: " + vat
}
