// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oncloth/storefront/internal/pkg/pdf"
)

// OrderHandler handles saved order endpoints
type OrderHandler struct {
	services *Services
	receipts *pdf.ReceiptService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(services *Services, receipts *pdf.ReceiptService) *OrderHandler {
	return &OrderHandler{
		services: services,
		receipts: receipts,
	}
}

// GetCurrentOrder handles GET /orders/current
func (h *OrderHandler) GetCurrentOrder(c *gin.Context) {
	order, err := h.services.Checkout(c).SavedOrder(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// ClearCurrentOrder handles DELETE /orders/current
func (h *OrderHandler) ClearCurrentOrder(c *gin.Context) {
	h.services.Checkout(c).ClearSavedOrder(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cleared successfully",
	})
}

// GetLastOrder handles GET /orders/last
func (h *OrderHandler) GetLastOrder(c *gin.Context) {
	order, err := h.services.Checkout(c).LastOrder(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// GetReceipt handles GET /orders/last/receipt?format=html|pdf
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	order, err := h.services.Checkout(c).LastOrder(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if c.DefaultQuery("format", "pdf") == "html" {
		html, err := h.receipts.RenderHTML(order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to render receipt",
			})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
		return
	}

	pdfBuffer, err := h.receipts.GeneratePDF(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", order.Timestamp))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
