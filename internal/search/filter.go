// Package search builds the filtered, sorted product catalog query.
//
// Filters are collected into an explicit ordered predicate list and
// applied as bound parameters, so any subset of them combines with AND
// and no filter value can alter the shape of the generated SQL.
package search

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sumia12/StockpileDS/internal/models"
)

var (
	ErrInvalidSortColumn = errors.New("search: sort column not allowed")
	ErrInvalidSortOrder  = errors.New("search: sort order must be asc or desc")
)

// sortableColumns is the allow-list of ORDER BY targets. Anything not
// listed here is rejected before it gets near the query.
var sortableColumns = map[string]bool{
	"price": true,
	"name":  true,
	"stock": true,
}

// Filter describes one product search. Every field is optional and the
// zero value matches the whole catalog.
type Filter struct {
	Name     string   // substring match, case-insensitive
	Category string   // exact match
	MinPrice *float64 // inclusive
	MaxPrice *float64 // inclusive
	InStock  *bool    // nil: all, true: stock > 0, false: stock = 0
	SortBy   string   // one of price, name, stock; empty for default order
	Order    string   // asc (default) or desc
}

type predicate struct {
	expr string
	args []interface{}
}

// predicates returns the active conditions in a fixed order.
func (f Filter) predicates() []predicate {
	var preds []predicate
	if f.Name != "" {
		preds = append(preds, predicate{"LOWER(name) LIKE ?", []interface{}{"%" + strings.ToLower(f.Name) + "%"}})
	}
	if f.Category != "" {
		preds = append(preds, predicate{"category = ?", []interface{}{f.Category}})
	}
	if f.MinPrice != nil {
		preds = append(preds, predicate{"price >= ?", []interface{}{*f.MinPrice}})
	}
	if f.MaxPrice != nil {
		preds = append(preds, predicate{"price <= ?", []interface{}{*f.MaxPrice}})
	}
	if f.InStock != nil {
		if *f.InStock {
			preds = append(preds, predicate{"stock > ?", []interface{}{0}})
		} else {
			preds = append(preds, predicate{"stock = ?", []interface{}{0}})
		}
	}
	return preds
}

// orderClause validates SortBy and Order against their allow-lists and
// returns the ORDER BY expression. The trailing id key makes row order
// deterministic across runs, ties included.
func (f Filter) orderClause() (string, error) {
	direction := "ASC"
	switch strings.ToLower(f.Order) {
	case "", "asc":
	case "desc":
		direction = "DESC"
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, f.Order)
	}

	if f.SortBy == "" {
		return "id ASC", nil
	}
	if !sortableColumns[f.SortBy] {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortColumn, f.SortBy)
	}
	return fmt.Sprintf("%s %s, id ASC", f.SortBy, direction), nil
}

// Products runs the filter against the catalog and returns matching
// rows. Pure read; no side effects.
func Products(db *gorm.DB, f Filter) ([]models.Product, error) {
	order, err := f.orderClause()
	if err != nil {
		return nil, err
	}

	query := db.Model(&models.Product{})
	for _, p := range f.predicates() {
		query = query.Where(p.expr, p.args...)
	}

	var products []models.Product
	if err := query.Order(order).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}
