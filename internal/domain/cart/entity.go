// internal/domain/cart/entity.go
package cart

import "time"

// ProductSnapshot is the denormalized product data copied into a line item at
// add time. Later product edits never alter items already in the cart.
type ProductSnapshot struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // minor currency units
	Image     string `json:"image"`
}

// LineItem is one row in the cart. Message-card lines always carry quantity 1
// and own a free-text message; regular lines for the same product merge into
// a single row instead.
type LineItem struct {
	LineID        string    `json:"line_id"`
	ProductID     uint      `json:"product_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"` // price at time of adding
	Image         string    `json:"image"`
	IsMessageCard bool      `json:"is_message_card"`
	Quantity      int       `json:"quantity"`
	Text          string    `json:"text,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// Subtotal returns price * quantity in minor currency units.
func (li LineItem) Subtotal() int64 {
	return li.Price * int64(li.Quantity)
}

// Totals represents calculated cart totals.
type Totals struct {
	ItemCount     int   `json:"item_count"`     // number of line items
	TotalQuantity int   `json:"total_quantity"` // sum of all quantities
	SubTotal      int64 `json:"sub_total"`      // minor currency units
}

// CalculateTotals sums price * quantity over the cart in integer minor units,
// so no rounding accumulates across line items.
func CalculateTotals(items []LineItem) Totals {
	totals := Totals{ItemCount: len(items)}
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal += item.Price * int64(item.Quantity)
	}
	return totals
}
