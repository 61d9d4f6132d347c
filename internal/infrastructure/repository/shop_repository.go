package repository

import (
	"context"
	"errors"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	domainRepo "github.com/avinashrk/billpoint-api/internal/domain/repository"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop profile repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

// Get returns the single shop profile row, creating a placeholder if the
// seed was skipped.
func (r *shopRepository) Get(ctx context.Context) (*entity.ShopProfile, error) {
	var profile entity.ShopProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = entity.ShopProfile{Name: "My Shop Name"}
		if err := r.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *shopRepository) Update(ctx context.Context, profile *entity.ShopProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
