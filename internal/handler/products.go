package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sumia12/StockpileDS/internal/models"
	"github.com/sumia12/StockpileDS/internal/search"
	"github.com/sumia12/StockpileDS/pkg/database"
)

type ProductHandler struct{}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Order("id").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

type CreateProductRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Stock    int      `json:"stock" binding:"min=0"`
	Price    *float64 `json:"price" binding:"required,min=0"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		Name:     req.Name,
		Category: req.Category,
		Stock:    req.Stock,
		Price:    *req.Price,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":     req.Name,
		"category": req.Category,
		"stock":    req.Stock,
		"price":    *req.Price,
	})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// SearchProducts answers the filtered catalog search. All query
// parameters are optional and combine with AND:
// name, category, min_price, max_price, in_stock, sort_by, order.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	filter := search.Filter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		SortBy:   c.Query("sort_by"),
		Order:    c.Query("order"),
	}

	if v := c.Query("min_price"); v != "" {
		minPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_price must be a number"})
			return
		}
		filter.MinPrice = &minPrice
	}
	if v := c.Query("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a number"})
			return
		}
		filter.MaxPrice = &maxPrice
	}
	if v := c.Query("in_stock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "in_stock must be true or false"})
			return
		}
		filter.InStock = &inStock
	}

	products, err := search.Products(database.DB, filter)
	if err != nil {
		if errors.Is(err, search.ErrInvalidSortColumn) || errors.Is(err, search.ErrInvalidSortOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
		return
	}
	c.JSON(http.StatusOK, products)
}
