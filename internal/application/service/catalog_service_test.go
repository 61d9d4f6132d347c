package service

import (
	"context"
	"testing"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCodePrefersScannerValue(t *testing.T) {
	products := catalogFixture()
	svc := NewCatalogService(products)

	v, err := svc.ResolveCode(context.Background(), "8901111", "100002")
	require.NoError(t, err)
	assert.Equal(t, "8901111", v.Barcode)
	assert.Equal(t, enum.CodeKindBarcode, products.LastLookupKind)
}

func TestResolveCodeByTypedNumber(t *testing.T) {
	products := catalogFixture()
	svc := NewCatalogService(products)

	v, err := svc.ResolveCode(context.Background(), "", " 100002 ")
	require.NoError(t, err)
	assert.Equal(t, "100002", v.BarcodeNumber)
	assert.Equal(t, enum.CodeKindBarcodeNumber, products.LastLookupKind)
}

func TestResolveCodeMissIs404(t *testing.T) {
	svc := NewCatalogService(catalogFixture())

	_, err := svc.ResolveCode(context.Background(), "does-not-exist", "")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Item not found", apperror.GetAppError(err).Message)
}

func TestResolveCodeStorageFailureIsNot404(t *testing.T) {
	products := catalogFixture()
	products.FindErr = assert.AnError
	svc := NewCatalogService(products)

	_, err := svc.ResolveCode(context.Background(), "8901111", "")
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err),
		"a broken lookup must not read as an unknown item")
}

func TestResolveCodeRequiresACode(t *testing.T) {
	svc := NewCatalogService(catalogFixture())

	_, err := svc.ResolveCode(context.Background(), "  ", "")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateProductGeneratesMissingCodes(t *testing.T) {
	products := &MockProductRepository{}
	svc := NewCatalogService(products)

	p, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		ItemName: "Ladoo",
		Type:     "sweet",
		Variants: []CreateVariantInput{{Gram: "100g", Price: 20.00, Stock: 50}},
	})

	require.NoError(t, err)
	require.Len(t, p.Variants, 1)
	assert.NotEmpty(t, p.Variants[0].BarcodeNumber)
	assert.Equal(t, p.Variants[0].BarcodeNumber, p.Variants[0].Barcode)
	assert.Equal(t, int64(2000), p.Variants[0].Price)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewCatalogService(&MockProductRepository{})

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{ItemName: " "})
	require.Error(t, err)

	_, err = svc.CreateProduct(context.Background(), &CreateProductInput{ItemName: "Ladoo"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateVariantPrice(t *testing.T) {
	products := catalogFixture()
	svc := NewCatalogService(products)
	v := products.Variants[0]

	updated, err := svc.UpdateVariantPrice(context.Background(), v.ProductID, v.ID, 275.50)
	require.NoError(t, err)
	assert.Equal(t, int64(27550), updated.Price)

	_, err = svc.UpdateVariantPrice(context.Background(), v.ProductID, v.ID, -1)
	require.Error(t, err)

	_, err = svc.UpdateVariantPrice(context.Background(), v.ProductID, uuid.New(), 10)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateVariantStock(t *testing.T) {
	products := catalogFixture()
	svc := NewCatalogService(products)
	v := products.Variants[1]

	updated, err := svc.UpdateVariantStock(context.Background(), v.ProductID, v.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Stock)

	_, err = svc.UpdateVariantStock(context.Background(), v.ProductID, v.ID, -1)
	require.Error(t, err)
}

func TestUpdateItemName(t *testing.T) {
	products := catalogFixture()
	svc := NewCatalogService(products)

	var productID uuid.UUID
	for id, p := range products.Products {
		if p.ItemName == "Kaju Katli" {
			productID = id
		}
	}

	p, err := svc.UpdateItemName(context.Background(), productID, "Kaju Katli Special")
	require.NoError(t, err)
	assert.Equal(t, "Kaju Katli Special", p.ItemName)

	_, err = svc.UpdateItemName(context.Background(), productID, "  ")
	require.Error(t, err)

	_, err = svc.UpdateItemName(context.Background(), uuid.New(), "x")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestVariantLabelRendersPNG(t *testing.T) {
	products := catalogFixture()
	svc := NewCatalogService(products)
	v := products.Variants[0]

	out, err := svc.VariantLabel(context.Background(), v.ProductID, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), out[:4])
}

func TestListProductsWrapsItemsWithPagination(t *testing.T) {
	svc := NewCatalogService(catalogFixture())

	result, err := svc.ListProducts(context.Background(), &repository.ProductFilterParams{})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
}
