package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumia12/StockpileDS/internal/models"
)

func productRouter() *gin.Engine {
	r := gin.New()
	productHandler := &ProductHandler{}
	r.GET("/api/v1/products/search", productHandler.SearchProducts)
	r.POST("/api/v1/products", productHandler.CreateProduct)
	return r
}

func TestSearchProductsEndpoint(t *testing.T) {
	db := useTestDB(t)
	require.NoError(t, db.Create(&[]models.Product{
		{Name: "Laptop", Category: "Electronics", Stock: 50, Price: 1200.00},
		{Name: "Sofa", Category: "Furniture", Stock: 10, Price: 550.00},
		{Name: "Monitor", Category: "Electronics", Stock: 0, Price: 150.00},
	}).Error)

	r := productRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/search?category=Electronics&in_stock=true", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Laptop", products[0].Name)
}

func TestSearchProductsRejectsBadParams(t *testing.T) {
	useTestDB(t)
	r := productRouter()

	for _, url := range []string{
		"/api/v1/products/search?sort_by=id",
		"/api/v1/products/search?sort_by=price&order=sideways",
		"/api/v1/products/search?min_price=abc",
		"/api/v1/products/search?in_stock=maybe",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, url, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestCreateProductAllowsZeroPrice(t *testing.T) {
	useTestDB(t)
	r := productRouter()

	// Free sample products are legal; only negative prices are not.
	w := postJSON(t, r, "/api/v1/products", gin.H{
		"name":     "Sticker",
		"category": "Merch",
		"stock":    100,
		"price":    0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/v1/products", gin.H{
		"name":     "Broken",
		"category": "Merch",
		"stock":    1,
		"price":    -5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/v1/products", gin.H{
		"category": "Merch",
		"stock":    1,
		"price":    5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
