package routes

import (
	cartControllers "github.com/acco8073-netizen/Grocery-App/controllers/cart"
	orderControllers "github.com/acco8073-netizen/Grocery-App/controllers/order"
	productControllers "github.com/acco8073-netizen/Grocery-App/controllers/product"
	userControllers "github.com/acco8073-netizen/Grocery-App/controllers/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public shopper endpoints.
func SetupShopRoutes(api *gin.RouterGroup, db *gorm.DB) {
	// ──────────────── Browse Catalog ────────────────
	api.GET("/categories", productControllers.GetCategories(db))
	api.GET("/products", productControllers.GetProducts(db))
	api.GET("/products/:id", productControllers.GetProductByID(db))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("/:user_id", cartControllers.GetCart(db))
		cartGroup.POST("/add", cartControllers.AddToCartHandler(db))
		cartGroup.PUT("/update", cartControllers.UpdateCartItemHandler(db))
		cartGroup.DELETE("/remove/:user_id/:product_id", cartControllers.RemoveFromCart(db))
		cartGroup.DELETE("/clear/:user_id", cartControllers.ClearCart(db))
	}

	// ──────────────── Orders ────────────────
	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", orderControllers.CreateOrderHandler(db))
		orderGroup.GET("/my/:user_id", orderControllers.GetMyOrders(db))
		orderGroup.GET("/:id", orderControllers.GetOrderByID(db))
	}

	// ──────────────── User Profile ────────────────
	userGroup := api.Group("/users")
	{
		userGroup.GET("/:id", userControllers.GetUser(db))
		userGroup.PUT("/:id", userControllers.UpdateUser(db))
		userGroup.POST("/:id/address", userControllers.AddAddress(db))
	}
}
