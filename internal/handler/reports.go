package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sumia12/StockpileDS/internal/models"
	"github.com/sumia12/StockpileDS/pkg/database"
)

type ReportHandler struct{}

// GetInventoryReport returns the combined inventory, order and supplier
// report in one call.
func (h *ReportHandler) GetInventoryReport(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Order("id").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	var orders []models.Order
	if err := database.DB.Preload("Product").Preload("Customer").Order("id").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var suppliers []models.Supplier
	if err := database.DB.Order("id").Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers"})
		return
	}

	var outOfStock int64
	database.DB.Model(&models.Product{}).Where("stock = ?", 0).Count(&outOfStock)

	c.JSON(http.StatusOK, gin.H{
		"products":     products,
		"orders":       orders,
		"suppliers":    suppliers,
		"out_of_stock": outOfStock,
	})
}

// ExportInventoryCSV streams the product catalog as a CSV download.
func (h *ReportHandler) ExportInventoryCSV(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Order("id").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="inventory_report.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"id", "name", "category", "stock", "price"})
	for _, p := range products {
		w.Write([]string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			p.Category,
			strconv.Itoa(p.Stock),
			fmt.Sprintf("%.2f", p.Price),
		})
	}
	w.Flush()
}
