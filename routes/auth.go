package routes

import (
	authControllers "github.com/acco8073-netizen/Grocery-App/controllers/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/send-otp", authControllers.SendOTP(db))
		authGroup.POST("/verify-otp", authControllers.VerifyOTP(db))
		authGroup.POST("/admin-login", authControllers.AdminLogin(db))
		authGroup.POST("/guest", authControllers.GuestLogin())
	}
}
