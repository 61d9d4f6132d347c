package service

import (
	"context"
	"strings"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
)

// ShopService manages the invoice header profile
type ShopService struct {
	shopRepo repository.ShopRepository
}

// NewShopService creates a new shop service
func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// GetProfile returns the shop profile.
func (s *ShopService) GetProfile(ctx context.Context) (*entity.ShopProfile, error) {
	return s.shopRepo.Get(ctx)
}

// UpdateProfileInput represents the editable shop profile fields
type UpdateProfileInput struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
	Phone        string
	Email        string
	GSTIN        string
}

// UpdateProfile edits the invoice header. Bills already stored are not
// re-rendered with the new header until their next render.
func (s *ShopService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.ShopProfile, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Shop name is required")
	}

	profile, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	profile.Name = strings.TrimSpace(input.Name)
	profile.AddressLine1 = strings.TrimSpace(input.AddressLine1)
	profile.AddressLine2 = strings.TrimSpace(input.AddressLine2)
	profile.Phone = strings.TrimSpace(input.Phone)
	profile.Email = strings.TrimSpace(input.Email)
	profile.GSTIN = strings.TrimSpace(input.GSTIN)

	if err := s.shopRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
