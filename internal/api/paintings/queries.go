package paintings

import (
	"fmt"
	"strconv"
	"time"

	"gallery-app/internal/domain/paintings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SoldFilter holds the optional criteria of the sold-paintings query.
// Every filter is independently optional; set filters are conjoined.
type SoldFilter struct {
	CreatedBy string
	MinPrice  *float64
	MaxPrice  *float64
	SoldFrom  *time.Time
	SoldTo    *time.Time
	SortBy    string
}

// sortColumns whitelists the sortable fields. Anything outside the set is
// ignored and the result comes back unordered.
var sortColumns = map[string]string{
	"createdBy": "created_by",
	"price":     "price",
	"soldDate":  "sold_date",
}

func soldPaintingsQuery(db *gorm.DB, f SoldFilter) *gorm.DB {
	q := db.Model(&paintings.Painting{}).Where("sold_to IS NOT NULL")

	if f.CreatedBy != "" {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.SoldFrom != nil {
		q = q.Where("sold_date >= ?", *f.SoldFrom)
	}
	if f.SoldTo != nil {
		q = q.Where("sold_date <= ?", *f.SoldTo)
	}

	if col, ok := sortColumns[f.SortBy]; ok {
		q = q.Order(col + " ASC")
	}

	return q
}

func soldFilterFromQuery(c *gin.Context) (SoldFilter, error) {
	f := SoldFilter{
		CreatedBy: c.Query("createdBy"),
		SortBy:    c.Query("sort_by"),
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("invalid min_price: %q", raw)
		}
		f.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("invalid max_price: %q", raw)
		}
		f.MaxPrice = &v
	}
	if raw := c.Query("sold_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, fmt.Errorf("invalid sold_from: %q", raw)
		}
		f.SoldFrom = &t
	}
	if raw := c.Query("sold_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, fmt.Errorf("invalid sold_to: %q", raw)
		}
		f.SoldTo = &t
	}

	return f, nil
}
