// internal/domain/catalog/catalog.go
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultCatalog []byte

// FeaturedCount is how many active products are featured
const FeaturedCount = 3

var (
	ErrEmptyProductID     = errors.New("product id is required")
	ErrDuplicateProductID = errors.New("duplicate product id")
	ErrInvalidPrice       = errors.New("product price must be positive")
)

// Catalog is a fixed, read-only product list. It is safe for concurrent use
// since nothing mutates it after construction.
type Catalog struct {
	products []Product
}

// New builds a catalog from a copy of products
func New(products []Product) (*Catalog, error) {
	seen := make(map[string]struct{}, len(products))
	copied := make([]Product, 0, len(products))

	for _, p := range products {
		if p.ID == "" {
			return nil, ErrEmptyProductID
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProductID, p.ID)
		}
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, p.ID)
		}
		seen[p.ID] = struct{}{}
		copied = append(copied, p.clone())
	}

	return &Catalog{products: copied}, nil
}

// Default returns the built-in OnCloth catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog document from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// catalogDocument mirrors products.yaml. Prices are read as text so they
// never pass through float64.
type catalogDocument struct {
	Products []struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Price       string   `yaml:"price"`
		Images      []string `yaml:"images"`
		Variants    struct {
			Sizes  []string `yaml:"sizes"`
			Colors []string `yaml:"colors"`
		} `yaml:"variants"`
		Active bool   `yaml:"active"`
		Fabric string `yaml:"fabric"`
		Fit    string `yaml:"fit"`
		Care   string `yaml:"care"`
	} `yaml:"products"`
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	products := make([]Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPrice, p.ID, err)
		}
		products = append(products, Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       price,
			Images:      p.Images,
			Variants:    Variants{Sizes: p.Variants.Sizes, Colors: p.Variants.Colors},
			Active:      p.Active,
			Fabric:      p.Fabric,
			Fit:         p.Fit,
			Care:        p.Care,
		})
	}

	return New(products)
}

// All returns every active product in catalog order
func (c *Catalog) All() []Product {
	active := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if p.Active {
			active = append(active, p.clone())
		}
	}
	return active
}

// Featured returns the first few active products
func (c *Catalog) Featured() []Product {
	all := c.All()
	if len(all) > FeaturedCount {
		return all[:FeaturedCount]
	}
	return all
}

// Lookup returns the first active product with the given id
func (c *Catalog) Lookup(id string) (Product, bool) {
	if id == "" {
		return Product{}, false
	}
	for _, p := range c.products {
		if p.ID == id && p.Active {
			return p.clone(), true
		}
	}
	return Product{}, false
}

// IsValidVariant reports whether the product exists, is active and offers
// both the size and the color
func (c *Catalog) IsValidVariant(productID, size, color string) bool {
	p, ok := c.Lookup(productID)
	if !ok {
		return false
	}
	return p.HasSize(size) && p.HasColor(color)
}
