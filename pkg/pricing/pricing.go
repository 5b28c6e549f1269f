package pricing

// TaxRateBasisPoints is the flat sales tax rate applied to every quote
// and order, expressed in basis points (1000 = 10%).
const TaxRateBasisPoints = 1000

// Totals carries the derived money fields for a quote or order.
type Totals struct {
	SubtotalCents int
	TaxCents      int
	TotalCents    int
}

// LineTotal computes quantity times unit price for a single line.
func LineTotal(quantity int, unitPriceCents int) int {
	return quantity * unitPriceCents
}

// Tax applies the flat rate to a subtotal with half-up rounding.
func Tax(subtotalCents int) int {
	return (subtotalCents*TaxRateBasisPoints + 5000) / 10000
}

// Compute derives subtotal, tax, and total from the provided line totals.
func Compute(lineTotals []int) Totals {
	var subtotal int
	for _, lt := range lineTotals {
		subtotal += lt
	}
	tax := Tax(subtotal)
	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}
