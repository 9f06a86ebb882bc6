package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sumia12/StockpileDS/internal/inventory"
	"github.com/sumia12/StockpileDS/internal/models"
	"github.com/sumia12/StockpileDS/pkg/database"
)

type PurchaseHandler struct{}

type CreatePurchaseRequest struct {
	ProductID    uint     `json:"product_id" binding:"required"`
	SupplierID   uint     `json:"supplier_id" binding:"required"`
	Quantity     int      `json:"quantity" binding:"required,min=1"`
	PurchaseDate string   `json:"purchase_date"` // YYYY-MM-DD, defaults to today
	UnitPrice    *float64 `json:"unit_price" binding:"required,min=0"`
}

func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "purchase_date must be YYYY-MM-DD"})
			return
		}
		purchaseDate = parsed
	}

	purchase, err := inventory.RecordPurchase(database.DB, inventory.PurchaseInput{
		ProductID:    req.ProductID,
		SupplierID:   req.SupplierID,
		Quantity:     req.Quantity,
		PurchaseDate: purchaseDate,
		UnitPrice:    *req.UnitPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrProductNotFound), errors.Is(err, inventory.ErrSupplierNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, inventory.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase"})
		}
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	var purchases []models.Purchase
	if err := database.DB.Preload("Product").Preload("Supplier").Order("purchase_date desc, id desc").Find(&purchases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
		return
	}
	c.JSON(http.StatusOK, purchases)
}
