package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is an orderable dish, tenant-scoped.
type MenuItem struct {
	ID           string          `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID string          `json:"restaurant_id" gorm:"type:char(36);not null;index"`
	Name         string          `json:"name" gorm:"size:100;not null"`
	Description  string          `json:"description,omitempty" gorm:"type:text"`
	Category     string          `json:"category,omitempty" gorm:"size:50;index"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL     string          `json:"image_url,omitempty" gorm:"size:255"`
	IsVeg        bool            `json:"is_veg" gorm:"default:true"`
	IsAvailable  bool            `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}
