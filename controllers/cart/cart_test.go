package cartControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acco8073-netizen/Grocery-App/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{}, &models.Cart{}, &models.CartItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/cart/:user_id", GetCart(db))
	r.POST("/api/cart/add", AddToCartHandler(db))
	r.PUT("/api/cart/update", UpdateCartItemHandler(db))
	r.DELETE("/api/cart/remove/:user_id/:product_id", RemoveFromCart(db))
	r.DELETE("/api/cart/clear/:user_id", ClearCart(db))
	return r
}

func createProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	p := models.Product{
		ID: uuid.NewString(), Name: name, Price: 50, Unit: "kg", Stock: 10, IsAvailable: true,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func cartItems(t *testing.T, db *gorm.DB, userID string) []models.CartItem {
	t.Helper()
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}
	return cart.Items
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	db := setupTestDB(t)
	p := createProduct(t, db, "Basmati Rice")
	userID := uuid.NewString()

	if err := AddToCart(db, userID, p.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := AddToCart(db, userID, p.ID, 1); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items := cartItems(t, db, userID)
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", items[0].Quantity)
	}
}

func TestAddToCartAppendsDifferentProducts(t *testing.T) {
	db := setupTestDB(t)
	rice := createProduct(t, db, "Basmati Rice")
	milk := createProduct(t, db, "Milk")
	userID := uuid.NewString()

	if err := AddToCart(db, userID, rice.ID, 1); err != nil {
		t.Fatalf("add rice: %v", err)
	}
	if err := AddToCart(db, userID, milk.ID, 2); err != nil {
		t.Fatalf("add milk: %v", err)
	}

	if items := cartItems(t, db, userID); len(items) != 2 {
		t.Fatalf("expected two lines, got %d", len(items))
	}
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	db := setupTestDB(t)
	rice := createProduct(t, db, "Basmati Rice")
	milk := createProduct(t, db, "Milk")
	userID := uuid.NewString()

	if err := AddToCart(db, userID, rice.ID, 2); err != nil {
		t.Fatalf("add rice: %v", err)
	}
	if err := AddToCart(db, userID, milk.ID, 1); err != nil {
		t.Fatalf("add milk: %v", err)
	}

	if err := UpdateCartItem(db, userID, rice.ID, 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}

	// The line is gone but the cart row survives with the other line.
	items := cartItems(t, db, userID)
	if len(items) != 1 {
		t.Fatalf("expected one remaining line, got %d", len(items))
	}
	if items[0].ProductID != milk.ID {
		t.Errorf("expected milk line to remain, got product %s", items[0].ProductID)
	}
}

func TestUpdateCartItemOverwritesQuantity(t *testing.T) {
	db := setupTestDB(t)
	p := createProduct(t, db, "Curd")
	userID := uuid.NewString()

	if err := AddToCart(db, userID, p.ID, 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := UpdateCartItem(db, userID, p.ID, 2); err != nil {
		t.Fatalf("update: %v", err)
	}

	items := cartItems(t, db, userID)
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity overwritten to 2, got %d", items[0].Quantity)
	}
}

func TestUpdateCartItemMissingCartIs404(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/cart/update?user_id=nobody&product_id=x&quantity=1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing cart, got %d", w.Code)
	}
}

func TestUpdateCartItemMissingLineIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	p := createProduct(t, db, "Chips")
	userID := uuid.NewString()

	if err := AddToCart(db, userID, p.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := UpdateCartItem(db, userID, "not-in-cart", 4); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if items := cartItems(t, db, userID); len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("cart changed by no-op update: %+v", items)
	}
}

func TestGetCartAbsentReturnsEmptyList(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/nobody", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Items []CartLine `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 0 {
		t.Errorf("expected empty items, got %d", len(body.Items))
	}
}

func TestGetCartSkipsVanishedProducts(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	p := createProduct(t, db, "Tomato")
	userID := uuid.NewString()

	if err := AddToCart(db, userID, p.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := db.Delete(&p).Error; err != nil {
		t.Fatalf("delete product: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/"+userID, nil)
	r.ServeHTTP(w, req)

	var body struct {
		Items []CartLine `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 0 {
		t.Errorf("expected vanished product to be skipped, got %d lines", len(body.Items))
	}
}

func TestRemoveAndClearAreTolerant(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	// Neither cart nor line exists; both calls still succeed.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/remove/nobody/nothing", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("remove on absent cart: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/cart/clear/nobody", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("clear on absent cart: expected 200, got %d", w.Code)
	}
}

func TestClearCartDeletesCartRow(t *testing.T) {
	db := setupTestDB(t)
	p := createProduct(t, db, "Onion")
	userID := uuid.NewString()

	if err := AddToCart(db, userID, p.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := ClearUserCart(db, userID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	var count int64
	db.Model(&models.Cart{}).Where("user_id = ?", userID).Count(&count)
	if count != 0 {
		t.Errorf("expected cart row deleted, found %d", count)
	}
}
