package productControllers

import (
	"net/http"

	"github.com/acco8073-netizen/Grocery-App/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name     string `json:"name" binding:"required"`
	NameTE   string `json:"nameTE"`
	Icon     string `json:"icon"`
	IsActive *bool  `json:"isActive"`
}

// GET /categories returns active categories only.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Where("is_active = ?", true).Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			ID:       uuid.NewString(),
			Name:     input.Name,
			NameTE:   input.NameTE,
			Icon:     input.Icon,
			IsActive: true,
		}
		if input.Icon == "" {
			category.Icon = "🏪"
		}
		if input.IsActive != nil {
			category.IsActive = *input.IsActive
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// PUT /admin/categories/:id
//
// Updating an id that does not exist is a silent success, matching the
// store's overwrite semantics.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":    input.Name,
			"name_te": input.NameTE,
			"icon":    input.Icon,
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		if err := db.Model(&models.Category{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /admin/categories/:id (hard delete)
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Where("id = ?", id).Delete(&models.Category{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
