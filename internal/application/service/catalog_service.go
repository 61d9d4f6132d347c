package service

import (
	"context"
	"strings"

	"github.com/avinashrk/billpoint-api/internal/application/cart"
	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/avinashrk/billpoint-api/pkg/label"
	"github.com/avinashrk/billpoint-api/pkg/pagination"
	"github.com/avinashrk/billpoint-api/pkg/utils"
	"github.com/google/uuid"
)

// CatalogService handles the product catalog and barcode resolution
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// ResolveCode looks up the variant a scan or a typed code refers to. Exactly
// one of barcode/barcodeNumber should be set; when both are given the
// scanner value wins. A code that matches nothing is a 404 with the message
// the register shows verbatim; anything else the storage layer reports stays
// a 500 so the register can tell "unknown item" apart from "lookup broken".
func (s *CatalogService) ResolveCode(ctx context.Context, barcode, barcodeNumber string) (*entity.ProductVariant, error) {
	barcode = strings.TrimSpace(barcode)
	barcodeNumber = strings.TrimSpace(barcodeNumber)

	code, kind := barcode, enum.CodeKindBarcode
	if code == "" {
		code, kind = barcodeNumber, enum.CodeKindBarcodeNumber
	}
	if code == "" {
		return nil, apperror.NewBadRequestError("Barcode is required")
	}

	variant, err := s.productRepo.FindVariantByCode(ctx, code, kind)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, apperror.NewAppError(404, "Item not found")
	}
	return variant, nil
}

// CartItem converts a resolved variant into the cart's input form.
func CartItem(v *entity.ProductVariant) cart.Item {
	return cart.Item{
		Name:          v.Product.ItemName,
		Gram:          v.Gram,
		Barcode:       v.Barcode,
		BarcodeNumber: v.BarcodeNumber,
		UnitPrice:     v.Price,
	}
}

// CreateProductInput represents a new catalog item with its initial variants
type CreateProductInput struct {
	ItemName string
	Type     string
	ImageURL *string
	Variants []CreateVariantInput
}

// CreateVariantInput represents one pack size to add
type CreateVariantInput struct {
	Gram          string
	Price         float64 // decimal rupees
	Stock         int
	Barcode       string
	BarcodeNumber string
}

// CreateProduct creates a catalog item with its variants. Variants created
// without codes get a generated barcode number so labels can be printed for
// them immediately.
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.ItemName) == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if len(input.Variants) == 0 {
		return nil, apperror.NewBadRequestError("At least one variant is required")
	}

	product := &entity.Product{
		ItemName: strings.TrimSpace(input.ItemName),
		Type:     strings.TrimSpace(input.Type),
		ImageURL: input.ImageURL,
	}
	for _, v := range input.Variants {
		variant := entity.ProductVariant{
			Gram:          strings.TrimSpace(v.Gram),
			Stock:         v.Stock,
			Barcode:       strings.TrimSpace(v.Barcode),
			BarcodeNumber: strings.TrimSpace(v.BarcodeNumber),
		}
		variant.SetPriceFromDecimal(v.Price)
		if variant.BarcodeNumber == "" {
			variant.BarcodeNumber = utils.GenerateBarcodeNumber()
		}
		if variant.Barcode == "" {
			variant.Barcode = variant.BarcodeNumber
		}
		product.Variants = append(product.Variants, variant)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a catalog item with its variants
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the catalog with pagination
func (s *CatalogService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// DeleteProduct removes a catalog item and all its variants
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// AddVariant adds a pack size to an existing catalog item
func (s *CatalogService) AddVariant(ctx context.Context, productID uuid.UUID, input *CreateVariantInput) (*entity.ProductVariant, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	variant := &entity.ProductVariant{
		ProductID:     productID,
		Gram:          strings.TrimSpace(input.Gram),
		Stock:         input.Stock,
		Barcode:       strings.TrimSpace(input.Barcode),
		BarcodeNumber: strings.TrimSpace(input.BarcodeNumber),
	}
	variant.SetPriceFromDecimal(input.Price)
	if variant.BarcodeNumber == "" {
		variant.BarcodeNumber = utils.GenerateBarcodeNumber()
	}
	if variant.Barcode == "" {
		variant.Barcode = variant.BarcodeNumber
	}

	if err := s.productRepo.CreateVariant(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *CatalogService) getVariant(ctx context.Context, productID, variantID uuid.UUID) (*entity.ProductVariant, error) {
	variant, err := s.productRepo.GetVariant(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, apperror.NewNotFoundError("Variant")
	}
	return variant, nil
}

// UpdateVariantPrice changes one variant's price
func (s *CatalogService) UpdateVariantPrice(ctx context.Context, productID, variantID uuid.UUID, price float64) (*entity.ProductVariant, error) {
	if price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	variant, err := s.getVariant(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	variant.SetPriceFromDecimal(price)
	if err := s.productRepo.UpdateVariant(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// UpdateVariantStock sets one variant's stock level
func (s *CatalogService) UpdateVariantStock(ctx context.Context, productID, variantID uuid.UUID, stock int) (*entity.ProductVariant, error) {
	if stock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}
	variant, err := s.getVariant(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	variant.Stock = stock
	if err := s.productRepo.UpdateVariant(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// UpdateItemName renames a catalog item. The rename applies to the whole
// product; stored bills keep the name the item had when they were created.
func (s *CatalogService) UpdateItemName(ctx context.Context, productID uuid.UUID, itemName string) (*entity.Product, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	product.ItemName = itemName
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteVariant removes a pack size
func (s *CatalogService) DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error {
	if _, err := s.getVariant(ctx, productID, variantID); err != nil {
		return err
	}
	return s.productRepo.DeleteVariant(ctx, productID, variantID)
}

// VariantLabel renders the variant's barcode as a CODE128 PNG for label
// printing.
func (s *CatalogService) VariantLabel(ctx context.Context, productID, variantID uuid.UUID) ([]byte, error) {
	variant, err := s.getVariant(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	value := variant.Barcode
	if value == "" {
		value = variant.BarcodeNumber
	}
	if value == "" {
		return nil, apperror.NewBadRequestError("Variant has no barcode to print")
	}
	return label.CODE128PNG(value, label.DefaultOptions)
}
