// internal/domain/cart/errors.go
package cart

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProduct   = errors.New("invalid product")
	ErrInvalidVariant   = errors.New("invalid size or color selection")
	ErrInvalidQuantity  = errors.New("invalid quantity (1-5 allowed)")
	ErrQuantityExceeded = errors.New("maximum 5 items per variant allowed")
	ErrInvalidPosition  = errors.New("no cart item at that position")
	ErrSaveFailed       = errors.New("failed to save cart")
	ErrClearFailed      = errors.New("failed to clear cart")

	ErrCartEmpty          = errors.New("your cart is empty")
	ErrProductUnavailable = errors.New("product is no longer available")
	ErrVariantUnavailable = errors.New("variant is no longer available")
	ErrPriceChanged       = errors.New("price has changed")
)

// ItemError reports which cart line failed pre-checkout validation
type ItemError struct {
	Name string
	Err  error
}

func (e *ItemError) Error() string {
	switch e.Err {
	case ErrProductUnavailable:
		return fmt.Sprintf("product %q is no longer available", e.Name)
	case ErrVariantUnavailable:
		return fmt.Sprintf("variant for %q is no longer available", e.Name)
	case ErrPriceChanged:
		return fmt.Sprintf("price has changed for %q, please review your cart", e.Name)
	default:
		return fmt.Sprintf("%q: %v", e.Name, e.Err)
	}
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
