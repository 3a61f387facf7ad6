package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billingdesk/internal/service"
)

// DiscountHandler handles tenant discount endpoints.
type DiscountHandler struct {
	discountService service.DiscountService
}

// NewDiscountHandler creates a new DiscountHandler.
func NewDiscountHandler(discountService service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// List handles GET /api/v1/tenant-discounts
// @Summary List discount overrides
// @Description All stored overrides grouped by tenant id and product key.
// @Tags discounts
// @Produce json
// @Success 200 {object} APIResponse{data=DiscountsResponse}
// @Router /tenant-discounts [get]
func (h *DiscountHandler) List(c *gin.Context) {
	discounts, err := h.discountService.GetAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, DiscountsResponse{Discounts: discounts})
}

// Upsert handles PUT /api/v1/tenant-discounts
// @Summary Upsert a discount override
// @Description Stores a percentage override for (tenant, vendor, product). Rates are clamped to [0,100] and rounded to two decimals; a null rate removes the override.
// @Tags discounts
// @Accept json
// @Produce json
// @Param body body UpsertDiscountRequest true "Override"
// @Success 200 {object} APIResponse{data=domain.DiscountOverride}
// @Success 204 "Override removed"
// @Failure 400 {object} APIResponse "Invalid body"
// @Router /tenant-discounts [put]
func (h *DiscountHandler) Upsert(c *gin.Context) {
	var req UpsertDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}

	override, err := h.discountService.Set(c.Request.Context(), req.TenantID, req.VendorName, req.ProductName, req.Rate)
	if err != nil {
		HandleError(c, err)
		return
	}
	if override == nil {
		RespondNoContent(c)
		return
	}
	RespondOK(c, override)
}

// Delete handles DELETE /api/v1/tenant-discounts
// @Summary Remove a discount override
// @Tags discounts
// @Accept json
// @Param body body DeleteDiscountRequest true "Override key"
// @Success 204 "Override removed"
// @Failure 400 {object} APIResponse "Invalid body"
// @Router /tenant-discounts [delete]
func (h *DiscountHandler) Delete(c *gin.Context) {
	var req DeleteDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}

	if err := h.discountService.Remove(c.Request.Context(), req.TenantID, req.VendorName, req.ProductName); err != nil {
		HandleError(c, err)
		return
	}
	RespondNoContent(c)
}
