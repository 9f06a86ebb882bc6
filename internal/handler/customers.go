package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumia12/StockpileDS/internal/models"
	"github.com/sumia12/StockpileDS/pkg/database"
)

type CustomerHandler struct{}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
	City    string `json:"city" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
		Contact: req.Contact,
	}

	if err := database.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	query := c.Query("q")
	customers := []models.Customer{}
	if query == "" {
		if err := database.DB.Order("id").Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
	} else {
		if err := database.DB.Where("name LIKE ? OR contact LIKE ?", "%"+query+"%", "%"+query+"%").Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
	}
	c.JSON(http.StatusOK, customers)
}
