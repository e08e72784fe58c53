package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/acco8073-netizen/Grocery-App/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartLine is a cart entry joined with the current product record.
type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// -------- Core Logic --------

// AddToCart creates the user's cart on first use, then merges by product:
// an existing line for the same product gets its quantity incremented, any
// other product appends a new line. There is no stock check.
func AddToCart(db *gorm.DB, userID, productID string, quantity int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{ID: uuid.NewString(), UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}

		item.Quantity += quantity
		return tx.Save(&item).Error
	})
}

// UpdateCartItem overwrites a line's quantity; zero or negative removes the
// line while the cart row itself stays. A missing line is a silent no-op,
// a missing cart is ErrRecordNotFound.
func UpdateCartItem(db *gorm.DB, userID, productID string, quantity int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return err
		}

		var item models.CartItem
		err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if quantity <= 0 {
			return tx.Delete(&item).Error
		}
		item.Quantity = quantity
		return tx.Save(&item).Error
	})
}

// -------- Handlers --------

// GET /cart/:user_id
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"items": []CartLine{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Join each line with its product; lines whose product vanished are skipped.
		lines := make([]CartLine, 0, len(cart.Items))
		for _, item := range cart.Items {
			var product models.Product
			if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
				continue
			}
			lines = append(lines, CartLine{Product: product, Quantity: item.Quantity})
		}

		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

// POST /cart/add?user_id=&product_id=&quantity=
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		productID := c.Query("product_id")
		if userID == "" || productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and product_id are required"})
			return
		}

		quantity := 1
		if q := c.Query("quantity"); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
			quantity = n
		}

		if err := AddToCart(db, userID, productID, quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// PUT /cart/update?user_id=&product_id=&quantity=
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		productID := c.Query("product_id")
		if userID == "" || productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and product_id are required"})
			return
		}

		quantity, err := strconv.Atoi(c.Query("quantity"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		if err := UpdateCartItem(db, userID, productID, quantity); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /cart/remove/:user_id/:product_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		productID := c.Param("product_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			// No cart means nothing to remove.
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}

		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /cart/clear/:user_id
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if err := ClearUserCart(db, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ClearUserCart deletes the cart row and its items. Absent carts are fine.
func ClearUserCart(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}
