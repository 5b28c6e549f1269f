package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var centsFactor = decimal.NewFromInt(100)

// FromCents converts an integer cent amount to a two-place decimal.
func FromCents(cents int) decimal.Decimal {
	return decimal.NewFromInt(int64(cents)).Div(centsFactor)
}

// FormatCents renders a cent amount as a dollar string, e.g. 12345 -> "$123.45".
func FormatCents(cents int) string {
	d := FromCents(cents)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// ParseDollars converts a dollar string like "123.45" or "$1,234.50" to cents.
// Amounts with sub-cent precision are rejected.
func ParseDollars(value string) (int, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}

	cents := d.Mul(centsFactor)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", value)
	}
	return int(cents.IntPart()), nil
}
