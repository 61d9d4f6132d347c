package handler

import (
	"net/http"

	"github.com/avinashrk/billpoint-api/internal/application/service"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/request"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/response"
	"github.com/avinashrk/billpoint-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	catalogService *service.CatalogService
	exportService  *service.ExportService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *service.CatalogService, exportService *service.ExportService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService, exportService: exportService}
}

// ResolveBarcode handles GET /products/bar-code. The register calls this on
// every scan and on every typed code; the query carries barcode= for scans
// and barCodenumber= for keyed-in codes.
func (h *ProductHandler) ResolveBarcode(c *gin.Context) {
	barcode := c.Query("barcode")
	barcodeNumber := c.Query("barCodenumber")

	variant, err := h.catalogService.ResolveCode(c.Request.Context(), barcode, barcodeNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item found", variant)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		Search:     filter.Search,
		Type:       filter.Type,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
	}
	params.Pagination.Validate()

	result, err := h.catalogService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "Products retrieved", result)
}

// Export handles GET /products/export and streams the catalog as xlsx.
func (h *ProductHandler) Export(c *gin.Context) {
	book, err := h.exportService.ExportProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid product payload: "+err.Error())
		return
	}

	input := &service.CreateProductInput{
		ItemName: req.ItemName,
		Type:     req.Type,
		ImageURL: req.Image,
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.CreateVariantInput{
			Gram:          v.Gram,
			Price:         v.Price,
			Stock:         v.Stock,
			Barcode:       v.Barcode,
			BarcodeNumber: v.BarcodeNumber,
		})
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created", product)
}

// Get handles GET /products/:productID
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved", product)
}

// Delete handles DELETE /products/:productID
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product deleted", nil)
}

// UpdateItemName handles PATCH /products/:productID/name
func (h *ProductHandler) UpdateItemName(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateItemNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Item name is required")
		return
	}

	product, err := h.catalogService.UpdateItemName(c.Request.Context(), productID, req.ItemName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item name updated", product)
}

// AddVariant handles POST /products/:productID/variants
func (h *ProductHandler) AddVariant(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid variant payload: "+err.Error())
		return
	}

	variant, err := h.catalogService.AddVariant(c.Request.Context(), productID, &service.CreateVariantInput{
		Gram:          req.Gram,
		Price:         req.Price,
		Stock:         req.Stock,
		Barcode:       req.Barcode,
		BarcodeNumber: req.BarcodeNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Variant created", variant)
}

// UpdateVariantPrice handles PATCH /products/:productID/variants/:variantID/price
func (h *ProductHandler) UpdateVariantPrice(c *gin.Context) {
	productID, variantID, ok := h.variantIDs(c)
	if !ok {
		return
	}

	var req request.UpdateVariantPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid price payload")
		return
	}

	variant, err := h.catalogService.UpdateVariantPrice(c.Request.Context(), productID, variantID, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Price updated", variant)
}

// UpdateVariantStock handles PATCH /products/:productID/variants/:variantID/stock
func (h *ProductHandler) UpdateVariantStock(c *gin.Context) {
	productID, variantID, ok := h.variantIDs(c)
	if !ok {
		return
	}

	var req request.UpdateVariantStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid stock payload")
		return
	}

	variant, err := h.catalogService.UpdateVariantStock(c.Request.Context(), productID, variantID, req.Stock)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock updated", variant)
}

// DeleteVariant handles DELETE /products/:productID/variants/:variantID
func (h *ProductHandler) DeleteVariant(c *gin.Context) {
	productID, variantID, ok := h.variantIDs(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteVariant(c.Request.Context(), productID, variantID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Variant deleted", nil)
}

// Label handles GET /products/:productID/variants/:variantID/label and
// serves a CODE128 PNG for the variant's barcode number.
func (h *ProductHandler) Label(c *gin.Context) {
	productID, variantID, ok := h.variantIDs(c)
	if !ok {
		return
	}

	png, err := h.catalogService.VariantLabel(c.Request.Context(), productID, variantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *ProductHandler) variantIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return uuid.Nil, uuid.Nil, false
	}
	variantID, err := uuid.Parse(c.Param("variantID"))
	if err != nil {
		response.BadRequest(c, "Invalid variant ID")
		return uuid.Nil, uuid.Nil, false
	}
	return productID, variantID, true
}
