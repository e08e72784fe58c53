package models

import "time"

type OrderStatus string

const (
	// Order statuses (kirana delivery flow)
	OrderStatusPending        OrderStatus = "pending"          // Order placed, awaiting confirmation
	OrderStatusAccepted       OrderStatus = "accepted"         // Confirmed by the shop
	OrderStatusPreparing      OrderStatus = "preparing"        // Items being packed
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // Delivery person on the way
	OrderStatusDelivered      OrderStatus = "delivered"        // Customer received the order
	OrderStatusCancelled      OrderStatus = "cancelled"        // Cancelled; reachable from any state
)

type Order struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"index" json:"userId,omitempty"`
	GuestName       string          `json:"guestName,omitempty"`
	GuestPhone      string          `json:"guestPhone,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	DeliveryType    string          `json:"deliveryType"` // delivery or pickup
	DeliveryCharge  float64         `json:"deliveryCharge"`
	DeliveryAddress DeliveryAddress `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryAddress"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod   string          `gorm:"default:'COD'" json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem is a snapshot of the product at order time; later catalog
// edits never touch it.
type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	OrderID       string  `gorm:"index" json:"-"`
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	ProductNameTE string  `json:"productNameTE"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}

// DeliveryAddress is copied from the user's chosen address at order time.
type DeliveryAddress struct {
	Label    string `json:"label"`
	Address  string `json:"address"`
	Landmark string `json:"landmark"`
}

// ValidStatus reports whether s is one of the enumerated order statuses.
func ValidStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
