package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avinashrk/billpoint-api/internal/application/service"
	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductRepo overrides only the lookup the resolver endpoint uses;
// anything else reaching the embedded nil interface is a test bug.
type stubProductRepo struct {
	repository.ProductRepository
	variant *entity.ProductVariant
	err     error
	gotCode string
	gotKind enum.CodeKind
}

func (s *stubProductRepo) FindVariantByCode(ctx context.Context, code string, kind enum.CodeKind) (*entity.ProductVariant, error) {
	s.gotCode = code
	s.gotKind = kind
	return s.variant, s.err
}

func newResolverRouter(repo *stubProductRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(service.NewCatalogService(repo), nil)
	r := gin.New()
	r.GET("/products/bar-code", h.ResolveBarcode)
	return r
}

func TestResolveBarcode_ScannedCode(t *testing.T) {
	repo := &stubProductRepo{
		variant: &entity.ProductVariant{
			Gram:          "250g",
			Barcode:       "8901111",
			BarcodeNumber: "100001",
			Product:       entity.Product{ItemName: "Kaju Katli"},
		},
	}
	repo.variant.Price = 25000
	r := newResolverRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/bar-code?barcode=8901111", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "8901111", repo.gotCode)
	assert.Equal(t, enum.CodeKindBarcode, repo.gotKind)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ItemName      string  `json:"itemName"`
			Gram          string  `json:"gram"`
			Price         float64 `json:"price"`
			Barcode       string  `json:"barCode"`
			BarcodeNumber string  `json:"barCodenumber"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "250g", body.Data.Gram)
	assert.Equal(t, 250.00, body.Data.Price)
	assert.Equal(t, "8901111", body.Data.Barcode)
	assert.Equal(t, "100001", body.Data.BarcodeNumber)
}

func TestResolveBarcode_TypedNumberParam(t *testing.T) {
	repo := &stubProductRepo{variant: &entity.ProductVariant{Gram: "500g"}}
	r := newResolverRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/bar-code?barCodenumber=100002", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "100002", repo.gotCode)
	assert.Equal(t, enum.CodeKindBarcodeNumber, repo.gotKind)
}

func TestResolveBarcode_UnknownCode(t *testing.T) {
	r := newResolverRouter(&stubProductRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/bar-code?barcode=0000000", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Item not found", body.Message)
}

func TestResolveBarcode_MissingCode(t *testing.T) {
	r := newResolverRouter(&stubProductRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/bar-code", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Barcode is required", body.Message)
}
