package models

import (
	"strconv"
	"strings"
)

// Order is a display-only order record served by GET /api/orders
type Order struct {
	ID      int64  `json:"id"`
	Product string `json:"product"`
	Price   Price  `json:"price"`
}

// Price is a decimal amount that always serializes with a fractional part,
// so 1200 is written as 1200.0
type Price float64

// MarshalJSON implements json.Marshaler
func (p Price) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(p), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return []byte(s), nil
}
