// internal/domain/cart/entity.go
package cart

import (
	"github.com/oncloth/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// Item is one cart line. Name, price and image are snapshots taken when the
// line was first added.
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
}

// LineTotal returns price * quantity
func (i Item) LineTotal() decimal.Decimal {
	return money.Mul(i.Price, i.Quantity)
}

// sameVariant reports whether two lines share the (id, size, color) key
func (i Item) sameVariant(id, size, color string) bool {
	return i.ID == id && i.Size == size && i.Color == color
}

// Summary is derived from a single read of the cart
type Summary struct {
	Items     []Item          `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}

// Count sums the quantities of items
func Count(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Subtotal sums price * quantity over items
func Subtotal(items []Item) decimal.Decimal {
	total := money.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
