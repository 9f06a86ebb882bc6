package models

import (
	"time"
)

type Purchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"not null" json:"product_id"`
	Product      Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	SupplierID   uint      `gorm:"not null" json:"supplier_id"`
	Supplier     Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	PurchaseDate time.Time `gorm:"type:date" json:"purchase_date"`
	UnitPrice    float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}
