package repository

import (
	"context"
	"errors"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	domainRepo "github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ProductVariant{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Product{}, "id = ?", id).Error
	})
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if params.Search != "" {
		query = query.Where("item_name ILIKE ?", "%"+params.Search+"%")
	}

	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "item_name"
	sortOrder := "ASC"
	switch params.SortBy {
	case "created_at", "item_name", "type":
		sortBy = params.SortBy
	}
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Variants").
		Order(sortBy + " " + sortOrder).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) ListForExport(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Order("item_name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) CreateVariant(ctx context.Context, variant *entity.ProductVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *productRepository) GetVariant(ctx context.Context, productID, variantID uuid.UUID) (*entity.ProductVariant, error) {
	var variant entity.ProductVariant
	err := r.db.WithContext(ctx).
		First(&variant, "id = ? AND product_id = ?", variantID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &variant, err
}

func (r *productRepository) UpdateVariant(ctx context.Context, variant *entity.ProductVariant) error {
	return r.db.WithContext(ctx).Save(variant).Error
}

func (r *productRepository) DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.ProductVariant{}, "id = ? AND product_id = ?", variantID, productID).Error
}

func (r *productRepository) FindVariantByCode(ctx context.Context, code string, kind enum.CodeKind) (*entity.ProductVariant, error) {
	if code == "" {
		return nil, nil
	}
	query := r.db.WithContext(ctx).Preload("Product")
	switch kind {
	case enum.CodeKindBarcodeNumber:
		query = query.Where("barcode_number = ?", code)
	default:
		query = query.Where("barcode = ?", code)
	}

	var variant entity.ProductVariant
	err := query.First(&variant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &variant, err
}

// FindVariantsByCodes resolves all codes in one query. A code matches on
// either the barcode or the barcode number column; the result is keyed by
// whichever value matched.
func (r *productRepository) FindVariantsByCodes(ctx context.Context, codes []string) (map[string]entity.ProductVariant, error) {
	if len(codes) == 0 {
		return map[string]entity.ProductVariant{}, nil
	}

	var variants []entity.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("barcode IN ? OR barcode_number IN ?", codes, codes).
		Find(&variants).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]entity.ProductVariant, len(variants))
	for _, v := range variants {
		if v.Barcode != "" {
			result[v.Barcode] = v
		}
		if v.BarcodeNumber != "" {
			result[v.BarcodeNumber] = v
		}
	}
	return result, nil
}

// AtomicDecrementStockBatch atomically decrements variant stock. If any
// variant has insufficient stock the entire transaction is rolled back and
// the failing IDs are returned.
func (r *productRepository) AtomicDecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	if len(decrements) == 0 {
		return nil, nil
	}

	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, amount := range decrements {
			result := tx.Model(&entity.ProductVariant{}).
				Where("id = ? AND stock >= ?", id, amount).
				Update("stock", gorm.Expr("stock - ?", amount))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		// Any failure rolls back the whole batch
		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}

		return nil
	})

	// Rolled back due to insufficient stock: report the IDs, not the sentinel
	if err == gorm.ErrInvalidTransaction && len(failedIDs) > 0 {
		return failedIDs, nil
	}

	return failedIDs, err
}

func (r *productRepository) AtomicIncrementStockBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	if len(increments) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, amount := range increments {
			err := tx.Model(&entity.ProductVariant{}).
				Where("id = ?", id).
				Update("stock", gorm.Expr("stock + ?", amount)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
