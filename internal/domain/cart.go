package domain

import "github.com/shopspring/decimal"

// CartLine is one client-side cart entry. Carts are ephemeral: they live in
// the client and are destroyed on successful submission. A decrement to zero
// removes the line, so Quantity is always >= 1 on a well-formed cart.
type CartLine struct {
	MenuItemID          string          `json:"menu_item_id"`
	Name                string          `json:"name,omitempty"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// OrderRequest is a cart ready for submission. It serializes cleanly so the
// offline queue can buffer it verbatim.
type OrderRequest struct {
	RestaurantID  string        `json:"restaurant_id"`
	UserID        string        `json:"user_id"`
	TableID       *string       `json:"table_id,omitempty"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	Lines         []CartLine    `json:"lines"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}
