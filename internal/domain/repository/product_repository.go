package repository

import (
	"context"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// ListForExport returns the whole catalog without pagination, variants
	// preloaded, ordered by item name.
	ListForExport(ctx context.Context) ([]entity.Product, error)

	// Variant operations
	CreateVariant(ctx context.Context, variant *entity.ProductVariant) error
	GetVariant(ctx context.Context, productID, variantID uuid.UUID) (*entity.ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *entity.ProductVariant) error
	DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error
	// FindVariantByCode looks up a variant by one catalog code; kind says
	// whether it is the scanner barcode or the printed barcode number.
	FindVariantByCode(ctx context.Context, code string, kind enum.CodeKind) (*entity.ProductVariant, error)
	// FindVariantsByCodes resolves many codes in a single query (prevents N+1
	// during bill creation). Keys of the result are the codes that matched.
	FindVariantsByCodes(ctx context.Context, barcodes []string) (map[string]entity.ProductVariant, error)

	// AtomicDecrementStockBatch atomically decrements stock for multiple
	// variants. Returns the IDs that failed (insufficient stock); if any
	// variant fails the entire transaction is rolled back.
	AtomicDecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	// AtomicIncrementStockBatch atomically increments stock for multiple
	// variants (restock, compensation).
	AtomicIncrementStockBatch(ctx context.Context, increments map[uuid.UUID]int) error
}

// ProductFilterParams contains filtering parameters for catalog queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       string
	SortBy     string
	SortOrder  string
}
