package models

import (
	"time"
)

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Country   string    `gorm:"size:100" json:"country"`
	City      string    `gorm:"size:100" json:"city"`
	Contact   string    `gorm:"size:50" json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}
