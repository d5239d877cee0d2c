package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem tracks stock for an ingredient or sellable unit.
type InventoryItem struct {
	ID           string          `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID string          `json:"restaurant_id" gorm:"type:char(36);not null;index"`
	Name         string          `json:"name" gorm:"size:100;not null"`
	Unit         string          `json:"unit" gorm:"size:20;not null;default:'pcs'"`
	CurrentStock decimal.Decimal `json:"current_stock" gorm:"type:decimal(10,2);not null"`
	MinimumStock decimal.Decimal `json:"minimum_stock" gorm:"type:decimal(10,2);not null"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit" gorm:"type:decimal(10,2)"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// LowOnStock reports whether the item has fallen below its reorder threshold.
func (i InventoryItem) LowOnStock() bool {
	return i.CurrentStock.LessThan(i.MinimumStock)
}
