package handler

import (
	"github.com/avinashrk/billpoint-api/internal/application/service"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/request"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// StatsHandler serves the reporting endpoints
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// ItemsReport handles GET /bill/stats/items-report
func (h *StatsHandler) ItemsReport(c *gin.Context) {
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

	results, err := h.statsService.ItemsReport(c.Request.Context(), period, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Items report", response.NewItemsReportResponse(results))
}

// TopItems handles GET /bill/stats/top-items
func (h *StatsHandler) TopItems(c *gin.Context) {
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

	results, err := h.statsService.TopItems(c.Request.Context(), period, from, to, filter.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Top items", response.NewTopItemsResponse(results))
}

// SalesTrend handles GET /bill/stats/sales-trend. The console sends the
// window selector as "range" here; "period" works too.
func (h *StatsHandler) SalesTrend(c *gin.Context) {
	var filter request.StatsFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	periodStr := filter.Range
	if periodStr == "" {
		periodStr = filter.Period
	}
	period, from, to, ok := parseWindow(periodStr, filter.From, filter.To)
	if !ok {
		response.BadRequest(c, "Invalid period or date range")
		return
	}

	points, bucket, err := h.statsService.SalesTrend(c.Request.Context(), period, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales trend", response.NewSalesTrendResponse(points, bucket))
}

// PaymentMethod handles GET /bill/stats/payment-method
func (h *StatsHandler) PaymentMethod(c *gin.Context) {
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

	results, err := h.statsService.PaymentMethodTotals(c.Request.Context(), period, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment method totals", response.NewPaymentMethodResponse(results))
}
