package mysql

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithItems(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			log.Printf("order insert error: %v", err)
			return fmt.Errorf("%w: %v", domain.ErrOrderPersistence, err)
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				log.Printf("order items insert error: %v", err)
				return fmt.Errorf("%w: %v", domain.ErrItemsPersistence, err)
			}
		}
		order.Items = items
		return nil
	})
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]domain.Order, error) {
	var out []domain.Order
	q := r.db.WithContext(ctx).Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		log.Printf("order ListByRestaurant error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) ListByStatus(ctx context.Context, restaurantID string, status domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("restaurant_id = ? AND status = ?", restaurantID, status).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("order ListByStatus error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		log.Printf("order UpdateStatus error: %v", err)
	}
	return err
}

func (r *orderRepo) MarkServed(ctx context.Context, id string, servedBy string, servedAt time.Time) error {
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    domain.OrderStatusServed,
			"served_by": servedBy,
			"served_at": servedAt,
		}).Error
	if err != nil {
		log.Printf("order MarkServed error: %v", err)
	}
	return err
}

func (r *orderRepo) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
	if err != nil {
		log.Printf("order UpdatePaymentStatus error: %v", err)
	}
	return err
}

// NextOrderNumber locks the counter row for the restaurant and day, bumping it
// by one. The first call of a day creates the row at 1. Counter gaps from
// rolled-back order inserts are acceptable.
func (r *orderRepo) NextOrderNumber(ctx context.Context, restaurantID string, day time.Time) (int64, error) {
	var seq int64
	key := day.Format("20060102")
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c domain.OrderCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("restaurant_id = ? AND day = ?", restaurantID, key).
			First(&c).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c = domain.OrderCounter{RestaurantID: restaurantID, Day: key, Counter: 1}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			c.Counter++
			err = tx.Model(&domain.OrderCounter{}).
				Where("restaurant_id = ? AND day = ?", restaurantID, key).
				Update("counter", c.Counter).Error
			if err != nil {
				return err
			}
		}
		seq = c.Counter
		return nil
	})
	if err != nil {
		log.Printf("order NextOrderNumber error: %v", err)
		return 0, err
	}
	return seq, nil
}

func (r *orderRepo) RevenueByDay(ctx context.Context, restaurantID string, day time.Time) (*domain.RevenueSummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var out domain.RevenueSummary
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("COUNT(*) AS orders_count, "+
			"COALESCE(SUM(subtotal), 0) AS subtotal, "+
			"COALESCE(SUM(tax_amount), 0) AS tax_collected, "+
			"COALESCE(SUM(service_charge), 0) AS service_charge, "+
			"COALESCE(SUM(total_amount), 0) AS gross_revenue").
		Where("restaurant_id = ? AND payment_status = ? AND created_at >= ? AND created_at < ?",
			restaurantID, domain.PaymentStatusCompleted, start, end).
		Scan(&out).Error
	if err != nil {
		log.Printf("order RevenueByDay error: %v", err)
		return nil, err
	}
	return &out, nil
}
