package domain

import "strings"

// DentalService represents a single priced entry of the clinic price list.
// Entries are immutable once the catalog is loaded.
type DentalService struct {
	Name     string
	PriceUAH float64
}

// NormalizedName returns the lowercased name used as the fuzzy-match key.
// The original casing is preserved in Name for display.
func (s *DentalService) NormalizedName() string {
	return strings.ToLower(s.Name)
}
