package handler

import (
	"github.com/avinashrk/billpoint-api/internal/application/service"
	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/request"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POSHandler drives the server-side register sessions
type POSHandler struct {
	registerService *service.RegisterService
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(registerService *service.RegisterService) *POSHandler {
	return &POSHandler{registerService: registerService}
}

// Open handles POST /pos/sessions
func (h *POSHandler) Open(c *gin.Context) {
	sessionID := h.registerService.Open(c.Request.Context())
	response.Created(c, "Session opened", gin.H{"sessionId": sessionID})
}

// Scan handles POST /pos/sessions/:sessionID/scan
func (h *POSHandler) Scan(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Barcode is required")
		return
	}

	view, err := h.registerService.Scan(c.Request.Context(), sessionID, req.Barcode, req.BarcodeNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", response.NewCartViewResponse(view))
}

// ViewCart handles GET /pos/sessions/:sessionID/cart
func (h *POSHandler) ViewCart(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.registerService.ViewCart(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart", response.NewCartViewResponse(view))
}

// Checkout handles POST /pos/sessions/:sessionID/checkout. The cart empties
// only when the bill is stored; on any failure it stays intact for a retry.
func (h *POSHandler) Checkout(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Payment method is required")
		return
	}
	method, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, "Unknown payment method")
		return
	}

	bill, err := h.registerService.Checkout(c.Request.Context(), sessionID, req.CustomerName, method)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bill created", bill)
}

// Close handles DELETE /pos/sessions/:sessionID
func (h *POSHandler) Close(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.registerService.Close(c.Request.Context(), sessionID)
	response.OK(c, "Session closed", nil)
}

func (h *POSHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
