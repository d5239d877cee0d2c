package domain

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleWaiter  Role = "waiter"
	RoleKitchen Role = "kitchen"
	RoleCashier Role = "cashier"
)

// UserProfile is a staff member's tenant assignment. The payment gateway
// re-checks it server-side instead of trusting client-supplied restaurant ids.
type UserProfile struct {
	ID           string    `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID string    `json:"restaurant_id" gorm:"type:char(36);not null;index"`
	FullName     string    `json:"full_name" gorm:"size:100"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex"`
	Role         Role      `json:"role" gorm:"type:enum('owner','manager','waiter','kitchen','cashier');default:'waiter'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
