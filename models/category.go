package models

type Category struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	NameTE   string `json:"nameTE"` // Telugu name
	Icon     string `json:"icon"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
