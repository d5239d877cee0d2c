package mysql

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) FindByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		log.Printf("inventory FindByID error: %v", err)
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("inventory ListByRestaurant error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *inventoryRepo) ListLowStock(ctx context.Context, restaurantID string) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND current_stock < minimum_stock", restaurantID).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("inventory ListLowStock error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *inventoryRepo) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error {
	err := r.db.WithContext(ctx).Model(&domain.InventoryItem{}).
		Where("id = ?", id).
		Update("current_stock", gorm.Expr("current_stock + ?", delta)).Error
	if err != nil {
		log.Printf("inventory AdjustStock error: %v", err)
	}
	return err
}
