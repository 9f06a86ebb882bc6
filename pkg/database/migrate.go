package database

import (
	"gorm.io/gorm"

	"github.com/sumia12/StockpileDS/internal/models"
)

// Migrate creates any missing tables and declares the foreign key
// relationships between them. AutoMigrate only adds what is absent,
// so running it on every startup is safe.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Supplier{},
		&models.Order{},
		&models.Purchase{},
	)
}
