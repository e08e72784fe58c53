package adminControllers

import (
	"net/http"

	"github.com/acco8073-netizen/Grocery-App/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /admin/seed-data
//
// Loads the starter catalog. Idempotent: a store that already has
// categories is left untouched.
func SeedData(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var existing int64
		if err := db.Model(&models.Category{}).Count(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing data"})
			return
		}
		if existing > 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Data already seeded"})
			return
		}

		if err := Seed(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed data"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Data seeded successfully"})
	}
}

// Seed inserts the fixed kirana categories and products.
func Seed(db *gorm.DB) error {
	categories := []models.Category{
		{ID: uuid.NewString(), Name: "Rice & Grains", NameTE: "అన్నం & ధాన్యాలు", Icon: "🌾", IsActive: true},
		{ID: uuid.NewString(), Name: "Oil & Ghee", NameTE: "నూనె & నేయి", Icon: "🛢️", IsActive: true},
		{ID: uuid.NewString(), Name: "Dairy Products", NameTE: "పాల ఉత్పత్తులు", Icon: "🥛", IsActive: true},
		{ID: uuid.NewString(), Name: "Snacks", NameTE: "స్నాక్స్", Icon: "🍪", IsActive: true},
		{ID: uuid.NewString(), Name: "Beverages", NameTE: "పానీయాలు", Icon: "🥤", IsActive: true},
		{ID: uuid.NewString(), Name: "Vegetables", NameTE: "కూరగాయలు", Icon: "🥬", IsActive: true},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		products := []models.Product{
			// Rice & Grains
			{Name: "Basmati Rice", NameTE: "బాస్మతి బియ్యం", CategoryID: categories[0].ID, Price: 120, Unit: "kg", Stock: 100, Image: "https://via.placeholder.com/200?text=Rice"},
			{Name: "Sona Masoori Rice", NameTE: "సోనా మసూరి బియ్యం", CategoryID: categories[0].ID, Price: 80, Unit: "kg", Stock: 150, Image: "https://via.placeholder.com/200?text=Rice"},

			// Oil & Ghee
			{Name: "Sunflower Oil", NameTE: "పొద్దుతిరుగుడు నూనె", CategoryID: categories[1].ID, Price: 180, Unit: "litre", Stock: 50, Image: "https://via.placeholder.com/200?text=Oil"},
			{Name: "Pure Ghee", NameTE: "స్వచ్ఛమైన నేయి", CategoryID: categories[1].ID, Price: 500, Unit: "kg", Stock: 30, Image: "https://via.placeholder.com/200?text=Ghee"},

			// Dairy
			{Name: "Milk", NameTE: "పాలు", CategoryID: categories[2].ID, Price: 60, Unit: "litre", Stock: 200, Image: "https://via.placeholder.com/200?text=Milk"},
			{Name: "Curd", NameTE: "పెరుగు", CategoryID: categories[2].ID, Price: 50, Unit: "kg", Stock: 100, Image: "https://via.placeholder.com/200?text=Curd"},

			// Snacks
			{Name: "Biscuits", NameTE: "బిస్కెట్లు", CategoryID: categories[3].ID, Price: 30, Unit: "piece", Stock: 150, Image: "https://via.placeholder.com/200?text=Biscuits"},
			{Name: "Chips", NameTE: "చిప్స్", CategoryID: categories[3].ID, Price: 20, Unit: "piece", Stock: 200, Image: "https://via.placeholder.com/200?text=Chips"},

			// Beverages
			{Name: "Tea Powder", NameTE: "టీ పౌడర్", CategoryID: categories[4].ID, Price: 400, Unit: "kg", Stock: 80, Image: "https://via.placeholder.com/200?text=Tea"},
			{Name: "Coffee Powder", NameTE: "కాఫీ పౌడర్", CategoryID: categories[4].ID, Price: 600, Unit: "kg", Stock: 60, Image: "https://via.placeholder.com/200?text=Coffee"},

			// Vegetables
			{Name: "Tomato", NameTE: "టమోటా", CategoryID: categories[5].ID, Price: 40, Unit: "kg", Stock: 50, Image: "https://via.placeholder.com/200?text=Tomato"},
			{Name: "Onion", NameTE: "ఉల్లిపాయ", CategoryID: categories[5].ID, Price: 35, Unit: "kg", Stock: 60, Image: "https://via.placeholder.com/200?text=Onion"},
		}
		for i := range products {
			products[i].ID = uuid.NewString()
			products[i].IsAvailable = true
		}

		return tx.Create(&products).Error
	})
}
