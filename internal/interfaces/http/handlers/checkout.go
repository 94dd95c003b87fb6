// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oncloth/storefront/internal/domain/checkout"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	services *Services
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(services *Services) *CheckoutHandler {
	return &CheckoutHandler{services: services}
}

// CheckoutRequest is the checkout form plus the chosen payment method
type CheckoutRequest struct {
	checkout.CustomerForm
	PaymentMethod string `json:"payment_method"`
}

// ValidateCheckout handles POST /checkout/validate
func (h *CheckoutHandler) ValidateCheckout(c *gin.Context) {
	var form checkout.CustomerForm
	if !bindForm(c, &form) {
		return
	}

	customer := checkout.SanitizeForm(form)
	if err := checkout.ValidateForm(customer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout details are valid",
		"data":    customer,
	})
}

// GetShipping handles GET /checkout/shipping?country=
func (h *CheckoutHandler) GetShipping(c *gin.Context) {
	country := c.Query("country")

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"country":  country,
			"shipping": h.services.Checkout(c).Shipping(country),
		},
	})
}

// GetTotals handles GET /checkout/totals?country=
func (h *CheckoutHandler) GetTotals(c *gin.Context) {
	totals := h.services.Checkout(c).CalculateTotals(c.Request.Context(), c.Query("country"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Totals calculated successfully",
		"data":    totals,
	})
}

// ProcessCheckout handles POST /checkout
func (h *CheckoutHandler) ProcessCheckout(c *gin.Context) {
	var req CheckoutRequest
	if !bindForm(c, &req) {
		return
	}

	result, err := h.services.Checkout(c).ProcessCheckout(c.Request.Context(), req.CustomerForm, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order created, continue to payment",
		"data":    result,
	})
}

// PayWithCrypto handles POST /checkout/crypto
func (h *CheckoutHandler) PayWithCrypto(c *gin.Context) {
	var form checkout.CustomerForm
	if !bindForm(c, &form) {
		return
	}

	redirect, err := h.services.Checkout(c).PayWithCrypto(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Redirecting to payment",
		"data":    redirect,
	})
}

func bindForm(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return false
	}
	return true
}
