package paintings

import "time"

// ---------- requests

type CreatePaintingRequest struct {
	CreatedBy          string   `json:"createdBy" binding:"required"`
	Size               string   `json:"size" binding:"required"`
	IsAvailableForSale *bool    `json:"isAvailableForSale"`
	Price              *float64 `json:"price" binding:"required"`
}

// UpdatePaintingRequest is the partial-update shape: only fields present in
// the body are applied. Absent fields stay untouched.
type UpdatePaintingRequest struct {
	CreatedBy          *string    `json:"createdBy"`
	Size               *string    `json:"size"`
	IsAvailableForSale *bool      `json:"isAvailableForSale"`
	Price              *float64   `json:"price"`
	SoldTo             *string    `json:"soldTo"`
	SoldDate           *time.Time `json:"soldDate"`
}

type BuyPaintingRequest struct {
	SoldTo   string    `json:"soldTo" binding:"required"`
	SoldDate time.Time `json:"soldDate" binding:"required"`
}
