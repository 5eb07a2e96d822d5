package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	UserID    int       `json:"userId"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GuestCartEntry is one line of the cookie-held guest cart. Entries are not
// validated against the catalog until read.
type GuestCartEntry struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CartLine is the unified read model for both cart backings. Product is nil
// when the referenced product no longer exists; such lines carry no value.
type CartLine struct {
	ProductID int      `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product"`
}

// LineTotal is zero for lines whose product has been deleted.
func (l CartLine) LineTotal() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
