// internal/pkg/money/money.go
package money

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Prices are persisted and served as plain JSON numbers, matching the
// cart format the storefront has always written.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Zero is the zero amount
var Zero = decimal.Zero

// FromFloat converts a float price into an exact two-decimal amount
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// FromNumber parses a JSON number without going through float64
func FromNumber(n json.Number) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", n, err)
	}
	return d, nil
}

// InRange reports whether min <= d <= max
func InRange(d, min, max decimal.Decimal) bool {
	return d.GreaterThanOrEqual(min) && d.LessThanOrEqual(max)
}

// Mul multiplies an amount by an integer quantity
func Mul(d decimal.Decimal, quantity int) decimal.Decimal {
	return d.Mul(decimal.NewFromInt(int64(quantity)))
}

// Float returns the amount as a float64 for wire formats that need one
func Float(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// Format renders an amount as a USD price, e.g. "$49.99"
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
