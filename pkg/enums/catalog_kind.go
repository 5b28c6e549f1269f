package enums

import "fmt"

// CatalogKind distinguishes the origin of a quote line item: a stocked part,
// a labor service, or a free-form custom charge.
type CatalogKind string

const (
	CatalogKindProduct CatalogKind = "product"
	CatalogKindService CatalogKind = "service"
	CatalogKindCustom  CatalogKind = "custom"
)

var validCatalogKinds = []CatalogKind{
	CatalogKindProduct,
	CatalogKindService,
	CatalogKindCustom,
}

// String implements fmt.Stringer.
func (c CatalogKind) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CatalogKind.
func (c CatalogKind) IsValid() bool {
	for _, candidate := range validCatalogKinds {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCatalogKind converts raw input into a CatalogKind.
func ParseCatalogKind(value string) (CatalogKind, error) {
	for _, candidate := range validCatalogKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid catalog kind %q", value)
}
