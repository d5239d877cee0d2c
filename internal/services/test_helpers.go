package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/raamveerrr/pos/internal/domain"
)

const (
	TestRestaurantID = "11111111-1111-1111-1111-111111111111"
	TestUserID       = "22222222-2222-2222-2222-222222222222"
	TestOrderID      = "33333333-3333-3333-3333-333333333333"
	TestTableID      = "44444444-4444-4444-4444-444444444444"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func CreateTestRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:            TestRestaurantID,
		Name:          "Test Kitchen",
		Currency:      "INR",
		TaxRate:       dec("0.18"),
		ServiceCharge: dec("0.10"),
		IsActive:      true,
	}
}

func CreateTestProfile(id, restaurantID string) *domain.UserProfile {
	return &domain.UserProfile{
		ID:           id,
		RestaurantID: restaurantID,
		FullName:     "Test Waiter",
		Role:         domain.RoleWaiter,
		IsActive:     true,
	}
}

func CreateTestOrder(id, restaurantID string, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:            id,
		RestaurantID:  restaurantID,
		OrderNumber:   "ORD-20250101-0001",
		Status:        status,
		PaymentStatus: domain.PaymentStatusPending,
		Subtotal:      dec("85.00"),
		TaxAmount:     dec("15.30"),
		ServiceCharge: dec("8.50"),
		TotalAmount:   dec("108.80"),
		CreatedBy:     TestUserID,
		CreatedAt:     time.Now(),
	}
}

// CreateTestCart prices to subtotal 85.00, tax 15.30, service 8.50 and total
// 108.80 at the default 18%/10% rates.
func CreateTestCart() []domain.CartLine {
	return []domain.CartLine{
		{MenuItemID: "55555555-5555-5555-5555-555555555555", Name: "Paneer Tikka", UnitPrice: dec("42.50"), Quantity: 2},
	}
}
