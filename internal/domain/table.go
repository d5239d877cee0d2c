package domain

import (
	"time"

	"gorm.io/datatypes"
)

type TableStatus string

const (
	TableStatusAvailable   TableStatus = "available"
	TableStatusOccupied    TableStatus = "occupied"
	TableStatusReserved    TableStatus = "reserved"
	TableStatusMaintenance TableStatus = "maintenance"
)

// Table is one physical table of a restaurant. Position holds the floor-plan
// coordinates as drawn by the layout editor.
type Table struct {
	ID           string         `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID string         `json:"restaurant_id" gorm:"type:char(36);not null;index;uniqueIndex:idx_tables_number"`
	TableNumber  int            `json:"table_number" gorm:"not null;uniqueIndex:idx_tables_number"`
	Capacity     int            `json:"capacity" gorm:"not null;default:4"`
	Status       TableStatus    `json:"status" gorm:"type:enum('available','occupied','reserved','maintenance');default:'available'"`
	Position     datatypes.JSON `json:"position,omitempty"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved, TableStatusMaintenance:
		return true
	}
	return false
}
