package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/mocks"
)

func TestMenuService_CreateItem(t *testing.T) {
	t.Run("assigns an id and persists", func(t *testing.T) {
		menu := new(mocks.MockMenuItemRepository)
		menu.On("Create", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).Return(nil)

		service := NewMenuService(menu)
		item, err := service.CreateItem(context.Background(), &domain.MenuItem{
			RestaurantID: TestRestaurantID,
			Name:         "Paneer Tikka",
			Price:        dec("42.50"),
			IsAvailable:  true,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		menu.AssertExpectations(t)
	})

	t.Run("rejects a nameless item", func(t *testing.T) {
		service := NewMenuService(new(mocks.MockMenuItemRepository))
		_, err := service.CreateItem(context.Background(), &domain.MenuItem{Price: dec("10")})
		assert.Error(t, err)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		service := NewMenuService(new(mocks.MockMenuItemRepository))
		_, err := service.CreateItem(context.Background(), &domain.MenuItem{Name: "Free Lunch", Price: dec("-1")})
		assert.Error(t, err)
	})
}

func TestMenuService_UpdateItem(t *testing.T) {
	t.Run("pins the tenant from the stored row", func(t *testing.T) {
		menu := new(mocks.MockMenuItemRepository)
		menu.On("FindByID", mock.Anything, "item-1").
			Return(&domain.MenuItem{ID: "item-1", RestaurantID: TestRestaurantID, Name: "Old", Price: dec("10")}, nil)
		menu.On("Update", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).Return(nil)

		service := NewMenuService(menu)
		item, err := service.UpdateItem(context.Background(), TestRestaurantID, &domain.MenuItem{
			ID:           "item-1",
			RestaurantID: "99999999-9999-9999-9999-999999999999",
			Name:         "New",
			Price:        dec("12"),
		})

		assert.NoError(t, err)
		assert.Equal(t, TestRestaurantID, item.RestaurantID)
		menu.AssertExpectations(t)
	})

	t.Run("unknown item", func(t *testing.T) {
		menu := new(mocks.MockMenuItemRepository)
		menu.On("FindByID", mock.Anything, "item-1").Return(nil, nil)

		service := NewMenuService(menu)
		_, err := service.UpdateItem(context.Background(), TestRestaurantID, &domain.MenuItem{ID: "item-1", Name: "New", Price: dec("12")})

		assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
	})

	t.Run("cross tenant denied", func(t *testing.T) {
		menu := new(mocks.MockMenuItemRepository)
		menu.On("FindByID", mock.Anything, "item-1").
			Return(&domain.MenuItem{ID: "item-1", RestaurantID: "99999999-9999-9999-9999-999999999999", Name: "Old", Price: dec("10")}, nil)

		service := NewMenuService(menu)
		_, err := service.UpdateItem(context.Background(), TestRestaurantID, &domain.MenuItem{ID: "item-1", Name: "New", Price: dec("12")})

		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})
}

func TestMenuService_SetAvailability(t *testing.T) {
	menu := new(mocks.MockMenuItemRepository)
	menu.On("FindByID", mock.Anything, "item-1").
		Return(&domain.MenuItem{ID: "item-1", RestaurantID: TestRestaurantID, Name: "Paneer Tikka", Price: dec("42.50"), IsAvailable: true}, nil)
	menu.On("SetAvailability", mock.Anything, "item-1", false).Return(nil)

	service := NewMenuService(menu)
	err := service.SetAvailability(context.Background(), TestRestaurantID, "item-1", false)

	assert.NoError(t, err)
	menu.AssertExpectations(t)
}
