package repository

import (
	"context"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
)

// ShopRepository defines the interface for the shop profile singleton
type ShopRepository interface {
	// Get returns the shop profile, seeding a default row if none exists.
	Get(ctx context.Context) (*entity.ShopProfile, error)
	Update(ctx context.Context, profile *entity.ShopProfile) error
}
