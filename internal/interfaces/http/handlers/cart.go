// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oncloth/storefront/internal/interfaces/http/middleware"
	"github.com/oncloth/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	services *Services
}

// NewCartHandler creates a new cart handler
func NewCartHandler(services *Services) *CartHandler {
	return &CartHandler{services: services}
}

// AddToCartRequest represents add to cart request. Quantity defaults to 1
// when omitted.
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	summary := h.services.Cart(c).Summary(c.Request.Context(), money.Zero)
	c.Header(middleware.CartCountHeader, strconv.Itoa(summary.ItemCount))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    summary,
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	count := h.services.Cart(c).ItemCount(c.Request.Context())
	c.Header(middleware.CartCountHeader, strconv.Itoa(count))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"count": count},
	})
}

// GetCartSummary handles GET /cart/summary?shipping=
func (h *CartHandler) GetCartSummary(c *gin.Context) {
	shipping, err := decimal.NewFromString(c.DefaultQuery("shipping", "0"))
	if err != nil {
		shipping = money.Zero
	}

	summary := h.services.Cart(c).Summary(c.Request.Context(), shipping)
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart summary retrieved successfully",
		"data":    summary,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	req := AddToCartRequest{Quantity: 1}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	count, err := h.services.Cart(c).AddItem(c.Request.Context(), req.ProductID, req.Size, req.Color, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    gin.H{"count": count},
	})
}

// UpdateCartItem handles PUT /cart/items/:index
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	carts := h.services.Cart(c)
	if err := carts.UpdateQuantity(c.Request.Context(), index, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    carts.Summary(c.Request.Context(), money.Zero),
	})
}

// RemoveFromCart handles DELETE /cart/items/:index
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	carts := h.services.Cart(c)
	if err := carts.RemoveItem(c.Request.Context(), index); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    carts.Summary(c.Request.Context(), money.Zero),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.services.Cart(c).Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// ValidateCart handles POST /cart/validate
func (h *CartHandler) ValidateCart(c *gin.Context) {
	if err := h.services.Cart(c).Validate(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart is valid",
		"data":    gin.H{"valid": true},
	})
}

func parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item index",
		})
		return 0, false
	}
	return index, true
}
