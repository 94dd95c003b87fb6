// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/oncloth/storefront/internal/interfaces/http/handlers"
	"github.com/oncloth/storefront/internal/pkg/pdf"
)

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, services *handlers.Services) {
	productHandler := handlers.NewProductHandler(services.Catalog())

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/featured", productHandler.GetFeaturedProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, services *handlers.Services) {
	cartHandler := handlers.NewCartHandler(services)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.GET("/summary", cartHandler.GetCartSummary)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:index", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:index", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/validate", cartHandler.ValidateCart)
	}
}

// SetupCheckoutRoutes sets up checkout related routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, services *handlers.Services) {
	checkoutHandler := handlers.NewCheckoutHandler(services)

	checkout := rg.Group("/checkout")
	{
		checkout.POST("/validate", checkoutHandler.ValidateCheckout)
		checkout.GET("/shipping", checkoutHandler.GetShipping)
		checkout.GET("/totals", checkoutHandler.GetTotals)
		checkout.POST("", checkoutHandler.ProcessCheckout)
		checkout.POST("/crypto", checkoutHandler.PayWithCrypto)
	}
}

// SetupOrderRoutes sets up saved order routes
func SetupOrderRoutes(rg *gin.RouterGroup, services *handlers.Services, receipts *pdf.ReceiptService) {
	orderHandler := handlers.NewOrderHandler(services, receipts)

	orders := rg.Group("/orders")
	{
		orders.GET("/current", orderHandler.GetCurrentOrder)
		orders.DELETE("/current", orderHandler.ClearCurrentOrder)
		orders.GET("/last", orderHandler.GetLastOrder)
		orders.GET("/last/receipt", orderHandler.GetReceipt)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, services *handlers.Services, receipts *pdf.ReceiptService) {
	SetupProductRoutes(rg, services)
	SetupCartRoutes(rg, services)
	SetupCheckoutRoutes(rg, services)
	SetupOrderRoutes(rg, services, receipts)
}
