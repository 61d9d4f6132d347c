package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avinashrk/billpoint-api/internal/application/service"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/request"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/response"
	"github.com/avinashrk/billpoint-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// BillHandler handles billing HTTP requests
type BillHandler struct {
	billingService *service.BillingService
	invoiceService *service.InvoiceService
	exportService  *service.ExportService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService, invoiceService *service.InvoiceService, exportService *service.ExportService) *BillHandler {
	return &BillHandler{
		billingService: billingService,
		invoiceService: invoiceService,
		exportService:  exportService,
	}
}

// Create handles POST /bill/create-bill
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid bill payload: "+err.Error())
		return
	}

	method, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, "Unknown payment method")
		return
	}

	input := &service.CreateBillInput{
		CustomerName:  req.CustomerName,
		PaymentMethod: method,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.BillItemInput{
			Barcode:       item.Barcode,
			BarcodeNumber: item.BarcodeNumber,
			Quantity:      item.Quantity,
		})
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bill created", bill)
}

// List handles GET /bill
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	period, from, to, ok := parseWindow(filter.Period, filter.From, filter.To)
	if !ok {
		response.BadRequest(c, "Invalid period or date range")
		return
	}
	windowFrom, windowTo, err := period.Range(time.Now(), from, to)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		Search:     filter.Search,
		From:       windowFrom,
		To:         windowTo,
	}
	params.Pagination.Validate()
	if filter.PaymentMethod != "" {
		method, err := enum.ParsePaymentMethod(filter.PaymentMethod)
		if err != nil {
			response.BadRequest(c, "Unknown payment method")
			return
		}
		params.PaymentMethod = &method
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "Bills retrieved", result)
}

// GetByBillNo handles GET /bill/:billNo
func (h *BillHandler) GetByBillNo(c *gin.Context) {
	bill, err := h.billingService.GetBillByNo(c.Request.Context(), c.Param("billNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved", bill)
}

// PrintHTML handles GET /bill/:billNo/print. It serves the self-contained
// invoice page the console opens in a new tab; ?print=1 triggers the browser
// print dialog on load.
func (h *BillHandler) PrintHTML(c *gin.Context) {
	doc, err := h.invoiceService.RenderHTML(c.Request.Context(), c.Param("billNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// PDF handles GET /bill/:billNo/pdf
func (h *BillHandler) PDF(c *gin.Context) {
	billNo := c.Param("billNo")
	doc, err := h.invoiceService.RenderPDF(c.Request.Context(), billNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", billNo))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// Thermal handles POST /bill/:billNo/thermal
func (h *BillHandler) Thermal(c *gin.Context) {
	if err := h.invoiceService.PrintThermal(c.Request.Context(), c.Param("billNo")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt sent to printer", nil)
}

// Export handles GET /bill/export and streams an xlsx workbook for the
// selected window.
func (h *BillHandler) Export(c *gin.Context) {
	var filter request.StatsFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	period, from, to, ok := parseWindow(filter.Period, filter.From, filter.To)
	if !ok {
		response.BadRequest(c, "Invalid period or date range")
		return
	}

	book, err := h.exportService.ExportBills(c.Request.Context(), period, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("bills-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}

// ExportItemsReport handles GET /bill/stats/items-report/export — the
// "Download" button on the items report.
func (h *BillHandler) ExportItemsReport(c *gin.Context) {
	var filter request.StatsFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	period, from, to, ok := parseWindow(filter.Period, filter.From, filter.To)
	if !ok {
		response.BadRequest(c, "Invalid period or date range")
		return
	}

	book, err := h.exportService.ExportItemsReport(c.Request.Context(), period, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("items-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}
