package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Shop, and Admin
// route groups. Everything lives under the /api prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Kirana Shop API", "version": "1.0"})
	})

	// 1️⃣ Public Auth routes
	SetupAuthRoutes(api, db)

	// 2️⃣ Shopper routes (catalog, cart, orders, profile)
	SetupShopRoutes(api, db)

	// 3️⃣ Admin console routes
	SetupAdminRoutes(api, db)
}
