package mysql

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

type restaurantRepo struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepo{db: db}
}

func (r *restaurantRepo) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.db.WithContext(ctx).First(&rest, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("restaurant FindByID error: %v", err)
		return nil, err
	}
	return &rest, nil
}

type userProfileRepo struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) repository.UserProfileRepository {
	return &userProfileRepo{db: db}
}

func (r *userProfileRepo) FindByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var u domain.UserProfile
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("user profile FindByID error: %v", err)
		return nil, err
	}
	return &u, nil
}
