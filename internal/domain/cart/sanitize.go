// internal/domain/cart/sanitize.go
package cart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/oncloth/storefront/internal/pkg/money"
	"github.com/oncloth/storefront/internal/pkg/security"
	"github.com/shopspring/decimal"
)

var (
	minPrice = decimal.RequireFromString("0.01")
	maxPrice = decimal.NewFromInt(10000)
)

// SanitizeItems turns untrusted cart JSON into cart lines. Anything that is
// not an array decodes to an empty cart; entries that do not match the line
// shape are dropped.
func SanitizeItems(raw []byte) []Item {
	items, _ := decodeItems(raw)
	return items
}

func decodeItems(raw []byte) ([]Item, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return []Item{}, fmt.Errorf("decode cart: %w", err)
	}

	entries, ok := decoded.([]any)
	if !ok {
		return []Item{}, fmt.Errorf("decode cart: expected array, got %T", decoded)
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		item, ok := itemFromRaw(entry)
		if !ok {
			continue
		}
		if clean, ok := SanitizeItem(item); ok {
			items = append(items, clean)
		}
	}
	return items, nil
}

// itemFromRaw checks field types and ranges of one decoded entry
func itemFromRaw(entry any) (Item, bool) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return Item{}, false
	}

	id, ok1 := obj["id"].(string)
	name, ok2 := obj["name"].(string)
	size, ok3 := obj["size"].(string)
	color, ok4 := obj["color"].(string)
	priceNum, ok5 := obj["price"].(json.Number)
	qtyNum, ok6 := obj["quantity"].(json.Number)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return Item{}, false
	}

	price, err := money.FromNumber(priceNum)
	if err != nil || !price.IsPositive() {
		return Item{}, false
	}

	quantity, ok := security.SanitizeQuantity(qtyNum)
	if !ok {
		return Item{}, false
	}

	image, _ := obj["image"].(string)

	return Item{
		ID:       id,
		Name:     name,
		Price:    price,
		Size:     size,
		Color:    color,
		Quantity: quantity,
		Image:    image,
	}, true
}

// SanitizeItem strips markup from every text field and enforces the price
// and quantity ranges
func SanitizeItem(item Item) (Item, bool) {
	if !money.InRange(item.Price, minPrice, maxPrice) {
		return Item{}, false
	}
	quantity, ok := security.SanitizeQuantity(item.Quantity)
	if !ok {
		return Item{}, false
	}

	return Item{
		ID:       security.SanitizeText(item.ID),
		Name:     security.SanitizeText(item.Name),
		Price:    item.Price,
		Size:     security.SanitizeText(item.Size),
		Color:    security.SanitizeText(item.Color),
		Quantity: quantity,
		Image:    security.SanitizeText(item.Image),
	}, true
}

func sanitizeAll(items []Item) []Item {
	clean := make([]Item, 0, len(items))
	for _, item := range items {
		if c, ok := SanitizeItem(item); ok {
			clean = append(clean, c)
		}
	}
	return clean
}
