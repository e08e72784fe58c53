package productControllers

import (
	"net/http"

	"github.com/acco8073-netizen/Grocery-App/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name          string  `json:"name" binding:"required"`
	NameTE        string  `json:"nameTE"`
	CategoryID    string  `json:"categoryId"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	Stock         int     `json:"stock"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	DescriptionTE string  `json:"descriptionTE"`
	IsAvailable   *bool   `json:"isAvailable"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ID:            uuid.NewString(),
			Name:          input.Name,
			NameTE:        input.NameTE,
			CategoryID:    input.CategoryID,
			Price:         input.Price,
			Unit:          input.Unit,
			Stock:         input.Stock,
			Image:         input.Image,
			Description:   input.Description,
			DescriptionTE: input.DescriptionTE,
			IsAvailable:   true,
		}
		if input.IsAvailable != nil {
			product.IsAvailable = *input.IsAvailable
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
