package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billingdesk/internal/service"
)

// ExportHandler handles invoice export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles GET /api/v1/accounts/:partnerId/invoices/:invoiceNo/export
// @Summary Export aggregated vendor view
// @Description Downloads the per-tenant vendor/product table as TSV (default, clipboard-friendly) or xlsx.
// @Tags invoices
// @Produce plain
// @Param partnerId path string true "Partner account ID"
// @Param invoiceNo path string true "Invoice number"
// @Param format query string false "Export format" Enums(tsv, xlsx)
// @Success 200 {string} string "Rendered export"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /accounts/{partnerId}/invoices/{invoiceNo}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := service.FormatTSV
	if c.Query("format") == string(service.FormatXLSX) {
		format = service.FormatXLSX
	}

	result, err := h.exportService.Export(c.Request.Context(), c.Param("partnerId"), c.Param("invoiceNo"), format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	if result.ArchiveURL != "" {
		c.Header("X-Archive-Location", result.ArchiveURL)
	}
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
