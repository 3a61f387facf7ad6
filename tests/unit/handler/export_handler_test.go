package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billingdesk/internal/domain"
	"billingdesk/internal/handler"
	"billingdesk/internal/service"
	"billingdesk/mocks"
)

func newExportHandler() (*handler.ExportHandler, *mocks.MockExportService) {
	mockSvc := new(mocks.MockExportService)
	h := handler.NewExportHandler(mockSvc)
	return h, mockSvc
}

func TestExportHandler_DefaultsToTSV(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Export", mock.Anything, "p-1", "INV-1", service.FormatTSV).Return(&service.ExportResult{
		Data:        []byte("Customer\tContoso\n"),
		Filename:    "INV-1_2025-06-15.tsv",
		ContentType: "text/tab-separated-values",
	}, nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/accounts/p-1/invoices/INV-1/export", invoiceParams())

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="INV-1_2025-06-15.tsv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/tab-separated-values")
	assert.Equal(t, "Customer\tContoso\n", w.Body.String())
	assert.Empty(t, w.Header().Get("X-Archive-Location"))
	mockSvc.AssertExpectations(t)
}

func TestExportHandler_ExposesArchiveLocation(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Export", mock.Anything, "p-1", "INV-1", service.FormatTSV).Return(&service.ExportResult{
		Data:        []byte("Customer\tContoso\n"),
		Filename:    "INV-1_2025-06-15.tsv",
		ContentType: "text/tab-separated-values",
		ArchiveURL:  "https://exports.example.com/signed",
	}, nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/accounts/p-1/invoices/INV-1/export", invoiceParams())

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://exports.example.com/signed", w.Header().Get("X-Archive-Location"))
	mockSvc.AssertExpectations(t)
}

func TestExportHandler_XLSXFormat(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Export", mock.Anything, "p-1", "INV-1", service.FormatXLSX).Return(&service.ExportResult{
		Data:        []byte{0x50, 0x4b},
		Filename:    "INV-1_2025-06-15.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}, nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/accounts/p-1/invoices/INV-1/export?format=xlsx", invoiceParams())

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestExportHandler_NotFound(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Export", mock.Anything, "p-1", "INV-1", service.FormatTSV).Return(nil, domain.ErrInvoiceNotFound)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/accounts/p-1/invoices/INV-1/export", invoiceParams())

	h.Export(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
