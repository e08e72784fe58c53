package models

type Product struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	NameTE        string  `json:"nameTE"` // Telugu name
	CategoryID    string  `gorm:"index" json:"categoryId"`
	Price         float64 `gorm:"not null" json:"price"`
	Unit          string  `json:"unit"` // kg, litre, piece
	Stock         int     `json:"stock"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	DescriptionTE string  `json:"descriptionTE"`
	IsAvailable   bool    `gorm:"default:true" json:"isAvailable"`
}
