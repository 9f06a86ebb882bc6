package models

import (
	"time"
)

type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null" json:"product_id"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CustomerID uint      `gorm:"not null" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	OrderDate  time.Time `gorm:"type:date" json:"order_date"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
