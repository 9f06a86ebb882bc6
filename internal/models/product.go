package models

import (
	"time"
)

type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Category  string    `gorm:"size:100;not null;index" json:"category"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	Price     float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
