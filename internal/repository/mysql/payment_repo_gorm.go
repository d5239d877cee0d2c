package mysql

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		log.Printf("payment insert error: %v", err)
		return err
	}
	return nil
}

func (r *paymentRepo) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("payment FindByID error: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("payment ListByOrder error: %v", err)
		return nil, err
	}
	return out, nil
}
