package pdf

import (
	"testing"

	"github.com/oncloth/storefront/internal/domain/checkout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	order := &checkout.LastOrder{
		Items: []checkout.LastOrderItem{{
			ID:       "oncloth-hoodie-black",
			Name:     "Classic Black Hoodie",
			Size:     "M",
			Color:    "Black",
			Quantity: 2,
			Price:    decimal.RequireFromString("49.99"),
		}},
		Shipping:  decimal.NewFromInt(10),
		Total:     decimal.RequireFromString("109.98"),
		Brand:     "OnCloth",
		Timestamp: 1700000000000,
		Customer: checkout.Customer{
			Name:    "Jane <Doe>",
			Email:   "jane@example.com",
			City:    "Bangkok",
			Country: "Thailand",
		},
	}

	html, err := NewReceiptService("Fallback").RenderHTML(order)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<title>OnCloth receipt</title>")
	assert.Contains(t, out, "Order placed November 14, 2023")
	assert.Contains(t, out, "Classic Black Hoodie")
	assert.Contains(t, out, "$49.99")
	assert.Contains(t, out, "$99.98")
	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "$109.98")
	assert.Contains(t, out, "Jane &lt;Doe&gt;", "customer fields are escaped")
}

func TestRenderHTML_BrandFallback(t *testing.T) {
	html, err := NewReceiptService("OnCloth").RenderHTML(&checkout.LastOrder{})
	require.NoError(t, err)
	assert.Contains(t, string(html), "Thank you for shopping with OnCloth!")
}
