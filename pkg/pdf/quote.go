package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/motoshophq/motoshop-backend/pkg/money"
)

// QuoteDocument carries everything needed to render a printable quote.
type QuoteDocument struct {
	QuoteID       string
	Status        string
	CustomerName  string
	CustomerPhone string
	VehicleLabel  string
	CreatedAt     time.Time
	Lines         []QuoteLine
	SubtotalCents int
	TaxCents      int
	TotalCents    int
}

// QuoteLine is a single rendered row in the document table.
type QuoteLine struct {
	Description    string
	Quantity       int
	UnitPriceCents int
	LineTotalCents int
}

// RenderQuote produces the PDF bytes for a quote.
func RenderQuote(doc QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Quote %s", doc.QuoteID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Service Quote")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Quote %s  -  %s", doc.QuoteID, doc.CreatedAt.Format("Jan 2, 2006")))
	pdf.Ln(6)

	if doc.CustomerName != "" || doc.CustomerPhone != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Customer: %s %s", doc.CustomerName, doc.CustomerPhone))
		pdf.Ln(6)
	}
	if doc.VehicleLabel != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Vehicle: %s", doc.VehicleLabel))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 7, "Description")
	pdf.Cell(20, 7, "Qty")
	pdf.Cell(35, 7, "Unit Price")
	pdf.Cell(35, 7, "Line Total")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range doc.Lines {
		pdf.Cell(100, 6, trim(line.Description, 55))
		pdf.Cell(20, 6, fmt.Sprintf("%d", line.Quantity))
		pdf.Cell(35, 6, money.FormatCents(line.UnitPriceCents))
		pdf.Cell(35, 6, money.FormatCents(line.LineTotalCents))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: %s", money.FormatCents(doc.SubtotalCents)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Tax: %s", money.FormatCents(doc.TaxCents)))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %s", money.FormatCents(doc.TotalCents)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s", time.Now().UTC().Format(time.RFC3339)))

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
