package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant is the tenant root. TaxRate and ServiceCharge are fractions
// (0.18 for 18%) consumed by the pricing engine at submission time.
type Restaurant struct {
	ID            string          `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string          `json:"name" gorm:"size:100;not null"`
	Address       string          `json:"address,omitempty" gorm:"size:255"`
	Phone         string          `json:"phone,omitempty" gorm:"size:20"`
	Currency      string          `json:"currency" gorm:"size:3;not null;default:'INR'"`
	TaxRate       decimal.Decimal `json:"tax_rate" gorm:"type:decimal(6,4);not null;default:0.18"`
	ServiceCharge decimal.Decimal `json:"service_charge" gorm:"type:decimal(6,4);not null;default:0.10"`
	RazorpayKeyID string          `json:"razorpay_key_id,omitempty" gorm:"size:64"`
	IsActive      bool            `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}
