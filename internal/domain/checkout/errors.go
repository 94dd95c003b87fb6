// internal/domain/checkout/errors.go
package checkout

import (
	"errors"
	"strings"
)

// ShopPath is where a buyer is sent after a corrupted cart is wiped
const ShopPath = "/shop"

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrCartCorrupted        = errors.New("cart data is corrupted, please refresh and add items again")
	ErrVariantMissing       = errors.New("all items must have size and color selected")
	ErrPaymentUnavailable   = errors.New("unable to process crypto payment, please check your connection and try again")
	ErrOrderNotSaved        = errors.New("unable to save order, please ensure storage is available")
	ErrNoSavedOrder         = errors.New("no saved order")
	ErrNoLastOrder          = errors.New("no completed order")
)

// ValidationError lists every problem found in a checkout form
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ". ")
}
