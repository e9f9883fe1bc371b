package paintings

import (
	"errors"
	"time"
)

// ErrNotForSale is returned when a buy targets a painting whose
// availability flag has already been cleared.
var ErrNotForSale = errors.New("painting not available for sale")

// MarkSold moves the painting from available to sold. The transition is
// one-way: sold paintings stay sold, and a second buy fails.
func (p *Painting) MarkSold(buyer string, at time.Time) error {
	if !p.IsAvailableForSale {
		return ErrNotForSale
	}

	p.SoldTo = &buyer
	p.SoldDate = &at
	p.IsAvailableForSale = false
	return nil
}

// Sold reports whether the painting carries sale metadata. The sold state
// is defined by soldTo/soldDate being set together.
func (p *Painting) Sold() bool {
	return p.SoldTo != nil && p.SoldDate != nil
}
