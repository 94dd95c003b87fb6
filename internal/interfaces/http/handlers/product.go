// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oncloth/storefront/internal/domain/catalog"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	catalog *catalog.Catalog
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: products}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := h.catalog.All()

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
		"total":   len(products),
	})
}

// GetFeaturedProducts handles GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Featured products retrieved successfully",
		"data":    h.catalog.Featured(),
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}
