package productControllers

import (
	"net/http"

	"github.com/acco8073-netizen/Grocery-App/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PUT /admin/products/:id
//
// Field replacement over the stored record; a missing id is a silent
// success, same as categories.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":           input.Name,
			"name_te":        input.NameTE,
			"category_id":    input.CategoryID,
			"price":          input.Price,
			"unit":           input.Unit,
			"stock":          input.Stock,
			"image":          input.Image,
			"description":    input.Description,
			"description_te": input.DescriptionTE,
		}
		if input.IsAvailable != nil {
			updates["is_available"] = *input.IsAvailable
		}

		if err := db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
