// Package inventory holds the stock-moving write paths: order creation
// (stock decrement) and purchase recording (stock increment). Each one
// runs as a single transaction so the inserted row and the stock change
// commit or roll back together.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sumia12/StockpileDS/internal/models"
)

var (
	ErrProductNotFound   = errors.New("inventory: product not found")
	ErrCustomerNotFound  = errors.New("inventory: customer not found")
	ErrSupplierNotFound  = errors.New("inventory: supplier not found")
	ErrInsufficientStock = errors.New("inventory: insufficient stock")
	ErrInvalidQuantity   = errors.New("inventory: quantity must be at least 1")
)

type OrderInput struct {
	ProductID  uint
	CustomerID uint
	Quantity   int
	OrderDate  time.Time
}

type PurchaseInput struct {
	ProductID    uint
	SupplierID   uint
	Quantity     int
	PurchaseDate time.Time
	UnitPrice    float64
}

// PlaceOrder inserts an order row and decrements the product's stock in
// one transaction. The decrement is conditional on remaining stock, so
// an order that would drive stock negative is rejected rather than
// clamped, and two concurrent orders cannot both take the last units.
func PlaceOrder(db *gorm.DB, in OrderInput) (*models.Order, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Select("id").First(&customer, in.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("look up customer: %w", err)
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", in.ProductID, in.Quantity).
			Update("stock", gorm.Expr("stock - ?", in.Quantity))
		if res.Error != nil {
			return fmt.Errorf("decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Either the product does not exist or it lacks stock.
			var product models.Product
			if err := tx.Select("id").First(&product, in.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return fmt.Errorf("look up product: %w", err)
			}
			return ErrInsufficientStock
		}

		order = models.Order{
			ProductID:  in.ProductID,
			CustomerID: in.CustomerID,
			Quantity:   in.Quantity,
			OrderDate:  in.OrderDate,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// RecordPurchase inserts a purchase row and increments the product's
// stock in one transaction.
func RecordPurchase(db *gorm.DB, in PurchaseInput) (*models.Purchase, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var purchase models.Purchase
	err := db.Transaction(func(tx *gorm.DB) error {
		var supplier models.Supplier
		if err := tx.Select("id").First(&supplier, in.SupplierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSupplierNotFound
			}
			return fmt.Errorf("look up supplier: %w", err)
		}

		res := tx.Model(&models.Product{}).
			Where("id = ?", in.ProductID).
			Update("stock", gorm.Expr("stock + ?", in.Quantity))
		if res.Error != nil {
			return fmt.Errorf("increment stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}

		purchase = models.Purchase{
			ProductID:    in.ProductID,
			SupplierID:   in.SupplierID,
			Quantity:     in.Quantity,
			PurchaseDate: in.PurchaseDate,
			UnitPrice:    in.UnitPrice,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("create purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}
