package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

var errInvalidMenuItem = errors.New("menu item needs a name and a non-negative price")

type MenuService struct {
	menu repository.MenuItemRepository
}

func NewMenuService(menu repository.MenuItemRepository) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) ListMenu(ctx context.Context, restaurantID string, availableOnly bool) ([]domain.MenuItem, error) {
	return s.menu.ListByRestaurant(ctx, restaurantID, availableOnly)
}

func (s *MenuService) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if item.Name == "" || item.Price.IsNegative() {
		return nil, errInvalidMenuItem
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, callerRestaurantID string, item *domain.MenuItem) (*domain.MenuItem, error) {
	if item.Name == "" || item.Price.IsNegative() {
		return nil, errInvalidMenuItem
	}

	existing, err := s.menu.FindByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrMenuItemNotFound
	}
	if existing.RestaurantID != callerRestaurantID {
		return nil, domain.ErrAccessDenied
	}

	item.RestaurantID = existing.RestaurantID
	if err := s.menu.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetAvailability toggles the 86 flag without touching the rest of the row.
func (s *MenuService) SetAvailability(ctx context.Context, callerRestaurantID, itemID string, available bool) error {
	existing, err := s.menu.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrMenuItemNotFound
	}
	if existing.RestaurantID != callerRestaurantID {
		return domain.ErrAccessDenied
	}
	return s.menu.SetAvailability(ctx, itemID, available)
}
