package handler

import (
	"github.com/avinashrk/billpoint-api/internal/application/service"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/request"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ShopHandler manages the invoice header profile
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Get handles GET /shop
func (h *ShopHandler) Get(c *gin.Context) {
	profile, err := h.shopService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shop profile", profile)
}

// Update handles PUT /shop
func (h *ShopHandler) Update(c *gin.Context) {
	var req request.UpdateShopProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Shop name is required")
		return
	}

	profile, err := h.shopService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		Phone:        req.Phone,
		Email:        req.Email,
		GSTIN:        req.GSTIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shop profile updated", profile)
}
