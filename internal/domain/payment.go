package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodUPI      PaymentMethod = "upi"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment records one settlement attempt for an order. An order may accumulate
// several rows (a failed attempt superseded by a retry); the newest wins for
// display.
type Payment struct {
	ID                string          `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID      string          `json:"restaurant_id" gorm:"type:char(36);not null;index"`
	OrderID           string          `json:"order_id" gorm:"type:char(36);not null;index"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Currency          string          `json:"currency" gorm:"size:3;not null;default:'INR'"`
	PaymentMethod     PaymentMethod   `json:"payment_method" gorm:"type:enum('cash','card','upi','razorpay');not null"`
	PaymentStatus     PaymentStatus   `json:"payment_status" gorm:"type:enum('pending','completed','failed','refunded');default:'pending'"`
	RazorpayOrderID   string          `json:"razorpay_order_id,omitempty" gorm:"size:64"`
	RazorpayPaymentID string          `json:"razorpay_payment_id,omitempty" gorm:"size:64"`
	FailureReason     string          `json:"failure_reason,omitempty" gorm:"size:255"`
	ProcessedBy       *string         `json:"processed_by,omitempty" gorm:"type:char(36)"`
	ProcessedAt       *time.Time      `json:"processed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodRazorpay:
		return true
	}
	return false
}

// GatewayRouted reports whether the method settles through the external
// payment processor. Cash settles locally.
func (m PaymentMethod) GatewayRouted() bool {
	return m == PaymentMethodCard || m == PaymentMethodUPI || m == PaymentMethodRazorpay
}
