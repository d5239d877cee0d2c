package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raamveerrr/pos/internal/domain"
)

// OrderRepository persists orders together with their line items.
//
// Lookup methods return (nil, nil) when no row matches so callers can
// distinguish absence from infrastructure failure.
type OrderRepository interface {
	// CreateWithItems inserts the order and every line item in a single
	// transaction. Either all rows land or none do.
	CreateWithItems(ctx context.Context, order *domain.Order) error

	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]domain.Order, error)
	ListByStatus(ctx context.Context, restaurantID string, status domain.OrderStatus) ([]domain.Order, error)

	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	MarkServed(ctx context.Context, id string, servedBy string, servedAt time.Time) error
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error

	// NextOrderNumber increments and returns the per-restaurant daily
	// counter used to build human-readable order numbers.
	NextOrderNumber(ctx context.Context, restaurantID string, day time.Time) (int64, error)

	RevenueByDay(ctx context.Context, restaurantID string, day time.Time) (*domain.RevenueSummary, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByOrder(ctx context.Context, orderID string) ([]domain.Payment, error)
}

type TableRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Table, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Table, error)
	UpdateStatus(ctx context.Context, id string, status domain.TableStatus) error
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
}

type UserProfileRepository interface {
	FindByID(ctx context.Context, id string) (*domain.UserProfile, error)
}

type MenuItemRepository interface {
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID string, availableOnly bool) ([]domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	SetAvailability(ctx context.Context, id string, available bool) error
}

type InventoryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.InventoryItem, error)
	ListLowStock(ctx context.Context, restaurantID string) ([]domain.InventoryItem, error)
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error
}
