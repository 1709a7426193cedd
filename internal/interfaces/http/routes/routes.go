// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/interfaces/http/handlers"
)

// SetupProductRoutes sets up menu browsing routes
func SetupProductRoutes(rg *gin.RouterGroup, deps *handlers.Dependencies) {
	productHandler := handlers.NewProductHandler(deps)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id/options", productHandler.GetProductOptions)
		products.POST("/:id/price", productHandler.PreviewPrice)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, deps *handlers.Dependencies) {
	cartHandler := handlers.NewCartHandler(deps)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartLine)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, deps *handlers.Dependencies) {
	checkoutHandler := handlers.NewCheckoutHandler(deps)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.GET("/preview", checkoutHandler.PreviewSubmission)
		checkoutGroup.POST("", checkoutHandler.PlaceOrder)
	}
}

// SetupOrderRoutes sets up order tracking routes
func SetupOrderRoutes(rg *gin.RouterGroup, deps *handlers.Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/stats", orderHandler.GetOrderStats)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.POST("/:id/payments", orderHandler.AddPayment)
		orders.GET("/:id/receipt", orderHandler.GetReceipt)
	}
}

// SetupRoutes sets up all application routes
func SetupRoutes(rg *gin.RouterGroup, deps *handlers.Dependencies) {
	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupCheckoutRoutes(rg, deps)
	SetupOrderRoutes(rg, deps)
}
