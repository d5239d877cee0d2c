package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

type ReportService struct {
	orders    repository.OrderRepository
	inventory repository.InventoryRepository
}

func NewReportService(orders repository.OrderRepository, inventory repository.InventoryRepository) *ReportService {
	return &ReportService{orders: orders, inventory: inventory}
}

// Revenue aggregates one day's completed payments.
func (s *ReportService) Revenue(ctx context.Context, restaurantID string, day time.Time) (*domain.RevenueSummary, error) {
	summary, err := s.orders.RevenueByDay(ctx, restaurantID, day)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		summary = &domain.RevenueSummary{}
	}
	return summary, nil
}

// LowStock lists inventory that has fallen below its reorder threshold.
func (s *ReportService) LowStock(ctx context.Context, restaurantID string) ([]domain.InventoryItem, error) {
	return s.inventory.ListLowStock(ctx, restaurantID)
}

// Inventory lists the full stock sheet.
func (s *ReportService) Inventory(ctx context.Context, restaurantID string) ([]domain.InventoryItem, error) {
	return s.inventory.ListByRestaurant(ctx, restaurantID)
}

// AdjustStock applies a signed delta to an item after a delivery or a count
// correction.
func (s *ReportService) AdjustStock(ctx context.Context, callerRestaurantID, itemID string, delta decimal.Decimal) (*domain.InventoryItem, error) {
	item, err := s.inventory.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrInventoryItemNotFound
	}
	if item.RestaurantID != callerRestaurantID {
		return nil, domain.ErrAccessDenied
	}

	if err := s.inventory.AdjustStock(ctx, itemID, delta); err != nil {
		return nil, err
	}
	return s.inventory.FindByID(ctx, itemID)
}
