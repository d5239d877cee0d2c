package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart             = errors.New("cart has no items")
	ErrInvalidQuantity       = errors.New("line quantity must be at least 1")
	ErrOrderPersistence      = errors.New("failed to persist order")
	ErrItemsPersistence      = errors.New("failed to persist order items")
	ErrUnauthorized          = errors.New("caller identity could not be resolved")
	ErrOrderNotFound         = errors.New("order not found")
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrTableNotFound         = errors.New("table not found")
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrAccessDenied          = errors.New("order belongs to a different restaurant")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidMethod         = errors.New("unsupported payment method")
	ErrPaymentPersistence    = errors.New("failed to persist payment")
	ErrGatewayTimeout        = errors.New("payment gateway request timed out")
	ErrInvalidTransition     = errors.New("invalid order status transition")
	ErrSyncClosed            = errors.New("realtime channel closed")
)

// GatewayError carries the processor's rejection message through to staff so
// they can retry with a different method.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway rejected the request: %s", e.Message)
}
