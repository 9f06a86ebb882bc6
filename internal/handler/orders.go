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

type OrderHandler struct{}

type CreateOrderRequest struct {
	ProductID  uint   `json:"product_id" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	OrderDate  string `json:"order_date"` // YYYY-MM-DD, defaults to today
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderDate := time.Now()
	if req.OrderDate != "" {
		parsed, err := time.Parse("2006-01-02", req.OrderDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_date must be YYYY-MM-DD"})
			return
		}
		orderDate = parsed
	}

	order, err := inventory.PlaceOrder(database.DB, inventory.OrderInput{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
		OrderDate:  orderDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrProductNotFound), errors.Is(err, inventory.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, inventory.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, inventory.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := database.DB.Preload("Product").Preload("Customer").Order("order_date desc, id desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
