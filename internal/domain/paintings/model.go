package paintings

import (
	"time"
)

type Painting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedDate time.Time `gorm:"column:created_date;not null" json:"createdDate"`
	CreatedBy   string    `gorm:"column:created_by;not null;index" json:"createdBy"`
	Size        string    `json:"size"`

	// no gorm default tag: gorm would drop an explicit false from the
	// INSERT; the create handler applies the default instead
	IsAvailableForSale bool    `gorm:"column:is_available_for_sale;not null" json:"isAvailableForSale"`
	Price              float64 `json:"price"`

	SoldTo   *string    `gorm:"column:sold_to;index" json:"soldTo"`
	SoldDate *time.Time `gorm:"column:sold_date" json:"soldDate"`
}
