package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a tenant-scoped order header. Rows are never deleted, only
// transitioned; totals satisfy total = subtotal + tax + service - discount.
type Order struct {
	ID             string          `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID   string          `json:"restaurant_id" gorm:"type:char(36);not null;index;uniqueIndex:idx_orders_number"`
	TableID        *string         `json:"table_id,omitempty" gorm:"type:char(36);index"`
	OrderNumber    string          `json:"order_number" gorm:"size:32;not null;uniqueIndex:idx_orders_number"`
	CustomerName   string          `json:"customer_name,omitempty" gorm:"size:100"`
	CustomerPhone  string          `json:"customer_phone,omitempty" gorm:"size:20"`
	Status         OrderStatus     `json:"status" gorm:"type:enum('pending','preparing','ready','served','cancelled');default:'pending';index"`
	PaymentStatus  PaymentStatus   `json:"payment_status" gorm:"type:enum('pending','completed','failed','refunded');default:'pending';index"`
	PaymentMethod  *PaymentMethod  `json:"payment_method,omitempty" gorm:"type:enum('cash','card','upi','razorpay')"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	TaxAmount      decimal.Decimal `json:"tax_amount" gorm:"type:decimal(10,2);not null"`
	ServiceCharge  decimal.Decimal `json:"service_charge" gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:decimal(10,2);not null"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	CreatedBy      string          `json:"created_by" gorm:"type:char(36);not null"`
	ServedBy       *string         `json:"served_by,omitempty" gorm:"type:char(36)"`
	ServedAt       *time.Time      `json:"served_at,omitempty"`
	Items          []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// OrderItem is a line item owned by its order; immutable once written.
type OrderItem struct {
	ID                  string          `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID             string          `json:"order_id" gorm:"type:char(36);not null;index"`
	MenuItemID          string          `json:"menu_item_id" gorm:"type:char(36);not null"`
	Quantity            int             `json:"quantity" gorm:"not null"`
	UnitPrice           decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice          decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	SpecialInstructions string          `json:"special_instructions,omitempty" gorm:"type:text"`
	CreatedAt           time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

// OrderCounter backs the human-readable order number sequence. One row per
// restaurant per day, incremented under a row lock.
type OrderCounter struct {
	RestaurantID string `gorm:"type:char(36);primaryKey"`
	Day          string `gorm:"type:char(8);primaryKey"`
	Counter      int64  `gorm:"not null;default:0"`
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusReady, OrderStatusServed, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusServed, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
// Served and cancelled are terminal.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusServed, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusServed || s == OrderStatusCancelled
}
