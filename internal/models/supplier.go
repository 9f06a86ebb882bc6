package models

import (
	"time"
)

type Supplier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Contact   string    `gorm:"size:50" json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
