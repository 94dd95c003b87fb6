// internal/domain/checkout/shipping.go
package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

var discountedCountries = map[string]struct{}{
	"afghanistan": {}, "bangladesh": {}, "bhutan": {}, "brunei": {}, "cambodia": {},
	"china": {}, "india": {}, "indonesia": {}, "japan": {}, "kazakhstan": {},
	"kyrgyzstan": {}, "laos": {}, "malaysia": {}, "maldives": {}, "mongolia": {},
	"myanmar": {}, "nepal": {}, "north korea": {}, "pakistan": {}, "philippines": {},
	"singapore": {}, "south korea": {}, "sri lanka": {}, "taiwan": {}, "tajikistan": {},
	"thailand": {}, "timor-leste": {}, "turkmenistan": {}, "uzbekistan": {}, "vietnam": {},
}

// ShippingRates holds the two flat shipping rates
type ShippingRates struct {
	Discounted decimal.Decimal
	Default    decimal.Decimal
}

// DefaultShippingRates are 10 within Asia and 20 everywhere else
var DefaultShippingRates = ShippingRates{
	Discounted: decimal.NewFromInt(10),
	Default:    decimal.NewFromInt(20),
}

// For returns the flat rate for a destination country. Matching ignores
// case and surrounding whitespace; unknown or empty input gets the default.
func (r ShippingRates) For(country string) decimal.Decimal {
	if _, ok := discountedCountries[strings.ToLower(strings.TrimSpace(country))]; ok {
		return r.Discounted
	}
	return r.Default
}

// CalculateShipping applies DefaultShippingRates
func CalculateShipping(country string) decimal.Decimal {
	return DefaultShippingRates.For(country)
}
