package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"billingdesk/internal/domain"
	"billingdesk/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /api/v1/accounts/:partnerId/invoices
// @Summary List invoices
// @Description List all invoices for a partner account with derived payment statuses.
// @Tags invoices
// @Produce json
// @Param partnerId path string true "Partner account ID"
// @Success 200 {object} APIResponse{data=[]domain.Invoice}
// @Failure 502 {object} APIResponse "Upstream billing API failure"
// @Router /accounts/{partnerId}/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context(), c.Param("partnerId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// Metrics handles GET /api/v1/accounts/:partnerId/invoices/metrics
// @Summary Invoice summary metrics
// @Description Aggregate totals, balances, and monthly volumes over the invoice list. The basis query param selects tax-inclusive (default) or tax-exclusive amounts.
// @Tags invoices
// @Produce json
// @Param partnerId path string true "Partner account ID"
// @Param basis query string false "Amount basis" Enums(incl_tax, excl_tax)
// @Success 200 {object} APIResponse{data=domain.BillingMetrics}
// @Router /accounts/{partnerId}/invoices/metrics [get]
func (h *InvoiceHandler) Metrics(c *gin.Context) {
	basis := domain.ParseAmountBasis(c.Query("basis"))
	metrics, err := h.invoiceService.Metrics(c.Request.Context(), c.Param("partnerId"), basis)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, metrics)
}

// Aging handles GET /api/v1/accounts/:partnerId/invoices/aging
// @Summary Receivables aging buckets
// @Description Outstanding tax-inclusive amounts by days past due. Paid invoices are excluded.
// @Tags invoices
// @Produce json
// @Param partnerId path string true "Partner account ID"
// @Param reference query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} APIResponse{data=domain.AgingBuckets}
// @Failure 400 {object} APIResponse "Invalid reference date"
// @Router /accounts/{partnerId}/invoices/aging [get]
func (h *InvoiceHandler) Aging(c *gin.Context) {
	var reference time.Time
	if ref := c.Query("reference"); ref != "" {
		t, err := time.Parse("2006-01-02", ref)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid reference date: must be YYYY-MM-DD")
			return
		}
		reference = t
	}

	buckets, err := h.invoiceService.Aging(c.Request.Context(), c.Param("partnerId"), reference)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, buckets)
}

// InvoiceTypes handles GET /api/v1/accounts/:partnerId/invoices/invoicetypes
// @Summary List billing types
// @Tags invoices
// @Produce json
// @Param partnerId path string true "Partner account ID"
// @Success 200 {object} APIResponse{data=[]domain.InvoiceType}
// @Router /accounts/{partnerId}/invoices/invoicetypes [get]
func (h *InvoiceHandler) InvoiceTypes(c *gin.Context) {
	types, err := h.invoiceService.InvoiceTypes(c.Request.Context(), c.Param("partnerId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, types)
}

// Detail handles GET /api/v1/accounts/:partnerId/invoices/:invoiceNo
// @Summary Invoice detail
// @Description Invoice with its lines normalized into per-tenant subscription breakdowns.
// @Tags invoices
// @Produce json
// @Param partnerId path string true "Partner account ID"
// @Param invoiceNo path string true "Invoice number"
// @Success 200 {object} APIResponse{data=domain.InvoiceDetail}
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /accounts/{partnerId}/invoices/{invoiceNo} [get]
func (h *InvoiceHandler) Detail(c *gin.Context) {
	detail, err := h.invoiceService.Detail(c.Request.Context(), c.Param("partnerId"), c.Param("invoiceNo"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, detail)
}

// VendorView handles GET /api/v1/accounts/:partnerId/invoices/:invoiceNo/vendors
// @Summary Aggregated vendor view
// @Description Per-tenant vendor/product aggregation of the invoice's billing data with discount overrides applied.
// @Tags invoices
// @Produce json
// @Param partnerId path string true "Partner account ID"
// @Param invoiceNo path string true "Invoice number"
// @Success 200 {object} APIResponse{data=[]domain.TenantVendorView}
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /accounts/{partnerId}/invoices/{invoiceNo}/vendors [get]
func (h *InvoiceHandler) VendorView(c *gin.Context) {
	views, err := h.invoiceService.VendorView(c.Request.Context(), c.Param("partnerId"), c.Param("invoiceNo"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, views)
}
