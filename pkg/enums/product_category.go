package enums

import "fmt"

// ProductCategory is the fixed set of instrument departments shown in the
// catalog navigation.
type ProductCategory string

const (
	CategoryGuitars     ProductCategory = "guitars"
	CategoryKeyboards   ProductCategory = "keyboards"
	CategoryDrums       ProductCategory = "drums"
	CategoryBrass       ProductCategory = "brass"
	CategoryStrings     ProductCategory = "strings"
	CategoryStudio      ProductCategory = "studio"
	CategoryDJ          ProductCategory = "dj"
	CategoryAccessories ProductCategory = "accessories"
)

var validProductCategories = []ProductCategory{
	CategoryGuitars,
	CategoryKeyboards,
	CategoryDrums,
	CategoryBrass,
	CategoryStrings,
	CategoryStudio,
	CategoryDJ,
	CategoryAccessories,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// ProductCategories returns the full category set in display order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}
