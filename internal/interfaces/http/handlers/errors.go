// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oncloth/storefront/internal/domain/cart"
	"github.com/oncloth/storefront/internal/domain/checkout"
)

var badRequestErrors = []error{
	cart.ErrInvalidProduct,
	cart.ErrInvalidVariant,
	cart.ErrInvalidQuantity,
	cart.ErrQuantityExceeded,
	cart.ErrCartEmpty,
	checkout.ErrInvalidPaymentMethod,
	checkout.ErrVariantMissing,
}

var notFoundErrors = []error{
	cart.ErrInvalidPosition,
	checkout.ErrNoSavedOrder,
	checkout.ErrNoLastOrder,
}

var storageErrors = []error{
	cart.ErrSaveFailed,
	cart.ErrClearFailed,
	checkout.ErrOrderNotSaved,
}

// respondError maps domain errors to a status code and an {"error": ...} body
func respondError(c *gin.Context, err error) {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   validationErr.Error(),
			"details": validationErr.Problems,
		})
		return
	}

	var itemErr *cart.ItemError
	if errors.As(err, &itemErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error": itemErr.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, checkout.ErrCartCorrupted):
		c.JSON(http.StatusGone, gin.H{
			"error":    checkout.ErrCartCorrupted.Error(),
			"redirect": checkout.ShopPath,
		})
	case errors.Is(err, checkout.ErrPaymentUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": checkout.ErrPaymentUnavailable.Error(),
		})
	case matches(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case matches(err, notFoundErrors):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case matches(err, storageErrors):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": sentinel(err, storageErrors).Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func matches(err error, targets []error) bool {
	return sentinel(err, targets) != nil
}

// sentinel returns the first target err wraps, hiding the underlying cause
func sentinel(err error, targets []error) error {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}
