// internal/domain/catalog/entity.go
package catalog

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Product represents a catalog entry
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Variants    Variants        `json:"variants"`
	Active      bool            `json:"active"`
	Fabric      string          `json:"fabric"`
	Fit         string          `json:"fit"`
	Care        string          `json:"care"`
}

// Variants lists the sizes and colors a product is offered in
type Variants struct {
	Sizes  []string `json:"sizes"`
	Colors []string `json:"colors"`
}

// PrimaryImage returns the first image reference, or "" when there is none
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasSize checks size membership (case-sensitive)
func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Variants.Sizes, size)
}

// HasColor checks color membership (case-sensitive)
func (p Product) HasColor(color string) bool {
	return slices.Contains(p.Variants.Colors, color)
}

func (p Product) clone() Product {
	p.Images = slices.Clone(p.Images)
	p.Variants.Sizes = slices.Clone(p.Variants.Sizes)
	p.Variants.Colors = slices.Clone(p.Variants.Colors)
	return p
}
