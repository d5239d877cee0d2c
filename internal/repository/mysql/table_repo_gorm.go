package mysql

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

type tableRepo struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) repository.TableRepository {
	return &tableRepo{db: db}
}

func (r *tableRepo) FindByID(ctx context.Context, id string) (*domain.Table, error) {
	var t domain.Table
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("table FindByID error: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *tableRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	var out []domain.Table
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("table_number ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("table ListByRestaurant error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *tableRepo) UpdateStatus(ctx context.Context, id string, status domain.TableStatus) error {
	err := r.db.WithContext(ctx).Model(&domain.Table{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		log.Printf("table UpdateStatus error: %v", err)
	}
	return err
}
