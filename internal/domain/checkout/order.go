// internal/domain/checkout/order.go
package checkout

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/oncloth/storefront/internal/domain/cart"
	"github.com/shopspring/decimal"
)

const (
	StatusPending = "pending"

	orderSuffixLen = 7
	dateLayout     = "2006-01-02T15:04:05.000Z07:00"
)

// Totals is a snapshot of the cart priced for one destination
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Items     []cart.Item     `json:"items"`
}

// Order is saved under currentOrder before the buyer leaves for payment
type Order struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Customer Customer        `json:"customer"`
	Items    []cart.Item     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"status"`
	Currency string          `json:"currency"`
}

// LastOrderItem is one line of a completed order
type LastOrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// LastOrder is saved under lastOrder once the relay has issued a checkout
type LastOrder struct {
	Items     []LastOrderItem `json:"items"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	Brand     string          `json:"brand"`
	Timestamp int64           `json:"timestamp"`
	Customer  Customer        `json:"customer"`
}

// NewOrderID returns ORDER-<unix millis>-<random base36>, upper-cased
func NewOrderID(now time.Time) string {
	var suffix strings.Builder
	for range orderSuffixLen {
		suffix.WriteString(strconv.FormatInt(rand.Int64N(36), 36))
	}
	return strings.ToUpper(fmt.Sprintf("ORDER-%d-%s", now.UnixMilli(), suffix.String()))
}

// CreateOrder builds a pending order stamped with the current time
func CreateOrder(customer Customer, totals Totals, currency string) Order {
	return newOrder(customer, totals, currency, time.Now())
}

func newOrder(customer Customer, totals Totals, currency string, now time.Time) Order {
	return Order{
		ID:       NewOrderID(now),
		Date:     now.UTC().Format(dateLayout),
		Customer: customer,
		Items:    totals.Items,
		Subtotal: totals.Subtotal,
		Shipping: totals.Shipping,
		Total:    totals.Total,
		Status:   StatusPending,
		Currency: currency,
	}
}

func lastOrderItems(items []cart.Item) []LastOrderItem {
	out := make([]LastOrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, LastOrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Size:     item.Size,
			Color:    item.Color,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return out
}
