package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sumia12/StockpileDS/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every session sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) []models.Product {
	t.Helper()
	products := []models.Product{
		{Name: "Laptop", Category: "Electronics", Stock: 50, Price: 1200.00},
		{Name: "T-Shirt", Category: "Clothing", Stock: 200, Price: 20.00},
		{Name: "Sofa", Category: "Furniture", Stock: 10, Price: 550.00},
		{Name: "Smartphone", Category: "Electronics", Stock: 100, Price: 700.00},
		{Name: "Desk", Category: "Furniture", Stock: 15, Price: 300.00},
		{Name: "Chair", Category: "Furniture", Stock: 40, Price: 300.00},
		{Name: "Monitor", Category: "Electronics", Stock: 0, Price: 150.00},
		{Name: `O'Brien" OR 1=1`, Category: "Books", Stock: 5, Price: 9.99},
	}
	require.NoError(t, db.Create(&products).Error)
	return products
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestProductsNoFilter(t *testing.T) {
	db := openTestDB(t)
	seeded := seedCatalog(t, db)

	got, err := Products(db, Filter{})
	require.NoError(t, err)
	assert.Len(t, got, len(seeded))
}

func TestProductsNameSubstring(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	got, err := Products(db, Filter{Name: "phone"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Smartphone"}, names(got))

	// Case-insensitive partial match.
	got, err = Products(db, Filter{Name: "LAPTOP"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop"}, names(got))
}

func TestProductsCategoryExact(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	got, err := Products(db, Filter{Category: "Electronics"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Laptop", "Smartphone", "Monitor"}, names(got))

	// Exact match, not substring.
	got, err = Products(db, Filter{Category: "Electro"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductsPriceBounds(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	min := 300.0
	got, err := Products(db, Filter{MinPrice: &min})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Laptop", "Sofa", "Smartphone", "Desk", "Chair"}, names(got))

	max := 300.0
	got, err = Products(db, Filter{MaxPrice: &max})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"T-Shirt", "Desk", "Chair", "Monitor", `O'Brien" OR 1=1`}, names(got))

	// Both bounds are inclusive.
	got, err = Products(db, Filter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Desk", "Chair"}, names(got))
}

func TestProductsInStockTriState(t *testing.T) {
	db := openTestDB(t)
	seeded := seedCatalog(t, db)

	inStock := true
	got, err := Products(db, Filter{InStock: &inStock})
	require.NoError(t, err)
	assert.Len(t, got, len(seeded)-1)
	assert.NotContains(t, names(got), "Monitor")

	outOfStock := false
	got, err = Products(db, Filter{InStock: &outOfStock})
	require.NoError(t, err)
	assert.Equal(t, []string{"Monitor"}, names(got))
}

func TestProductsCombinedFiltersNarrow(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	inStock := true
	combined, err := Products(db, Filter{Category: "Furniture", InStock: &inStock})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sofa", "Desk", "Chair"}, names(combined))

	// Adding a filter can only narrow the result set.
	categoryOnly, err := Products(db, Filter{Category: "Furniture"})
	require.NoError(t, err)
	assert.Subset(t, names(categoryOnly), names(combined))

	min, max := 100.0, 600.0
	all, err := Products(db, Filter{
		Name:     "o",
		Category: "Furniture",
		MinPrice: &min,
		MaxPrice: &max,
		InStock:  &inStock,
		SortBy:   "price",
		Order:    "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa"}, names(all))
}

func TestProductsSortedDeterministic(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	got, err := Products(db, Filter{SortBy: "price", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, got, 8)
	assert.Equal(t, "Laptop", got[0].Name)
	assert.Equal(t, `O'Brien" OR 1=1`, got[7].Name)

	// Desk and Chair share a price; the id tiebreak keeps insertion order.
	assert.Equal(t, []string{"Desk", "Chair"}, []string{got[3].Name, got[4].Name})

	// Repeated runs return identical row order.
	again, err := Products(db, Filter{SortBy: "price", Order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, names(got), names(again))
}

func TestProductsRejectsUnknownSortColumn(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	_, err := Products(db, Filter{SortBy: "category"})
	assert.ErrorIs(t, err, ErrInvalidSortColumn)

	_, err = Products(db, Filter{SortBy: "price; DROP TABLE products"})
	assert.ErrorIs(t, err, ErrInvalidSortColumn)

	_, err = Products(db, Filter{SortBy: "price", Order: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidSortOrder)

	// Rejection happens before execution; the table is intact.
	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 8, count)
}

func TestProductsInjectionSafeName(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	got, err := Products(db, Filter{Name: `O'Brien" OR 1=1`})
	require.NoError(t, err)
	assert.Equal(t, []string{`O'Brien" OR 1=1`}, names(got))

	got, err = Products(db, Filter{Name: `' OR '1'='1`})
	require.NoError(t, err)
	assert.Empty(t, got)
}
