package mysql

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

type menuRepo struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	var m domain.MenuItem
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("menu FindByID error: %v", err)
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) ListByRestaurant(ctx context.Context, restaurantID string, availableOnly bool) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	q := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	if err := q.Order("category ASC, name ASC").Find(&out).Error; err != nil {
		log.Printf("menu ListByRestaurant error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		log.Printf("menu insert error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		log.Printf("menu update error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	err := r.db.WithContext(ctx).Model(&domain.MenuItem{}).
		Where("id = ?", id).
		Update("is_available", available).Error
	if err != nil {
		log.Printf("menu SetAvailability error: %v", err)
	}
	return err
}
