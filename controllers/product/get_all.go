package productControllers

import (
	"net/http"
	"strings"

	"github.com/acco8073-netizen/Grocery-App/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /products?categoryId=&search=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering params
		categoryID := c.Query("categoryId")
		search := c.Query("search")

		// 2️⃣ Build base query: shoppers only see available products
		query := db.Model(&models.Product{}).Where("is_available = ?", true)

		// 3️⃣ Apply category filter (exact match)
		if categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		// 4️⃣ Apply search filter: case-insensitive substring on either name
		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(name_te) LIKE ?",
				likePattern, likePattern,
			)
		}

		// 5️⃣ Return products (no match is an empty list, not an error)
		products := []models.Product{}
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
