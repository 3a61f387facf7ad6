package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"billingdesk/internal/config"
	"billingdesk/internal/domain"
	"billingdesk/internal/export"
	"billingdesk/internal/port"
)

// ExportFormat selects the export rendering.
type ExportFormat string

const (
	FormatTSV  ExportFormat = "tsv"
	FormatXLSX ExportFormat = "xlsx"
)

// ContentType returns the MIME type for the format.
func (f ExportFormat) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/tab-separated-values"
}

// archiveLinkTTL bounds how long a presigned archive link stays valid.
const archiveLinkTTL = 7 * 24 * time.Hour

// ExportResult is a rendered export with its download metadata. ArchiveURL is
// a presigned link to the archived copy, empty when archiving is off.
type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
	ArchiveURL  string
}

// ExportService renders the aggregated vendor view of an invoice as TSV or
// xlsx and optionally archives the rendered file to object storage.
type ExportService interface {
	Export(ctx context.Context, partnerID, invoiceNo string, format ExportFormat) (*ExportResult, error)
}

type exportService struct {
	invoices InvoiceService
	storage  port.ObjectStorage
	cfg      *config.ExportConfig
}

// NewExportService creates a new ExportService implementation. Storage may be
// nil; archiving is skipped when it is, or when no bucket is configured.
func NewExportService(invoices InvoiceService, storage port.ObjectStorage, cfg *config.ExportConfig) ExportService {
	return &exportService{invoices: invoices, storage: storage, cfg: cfg}
}

func (s *exportService) Export(ctx context.Context, partnerID, invoiceNo string, format ExportFormat) (*ExportResult, error) {
	views, err := s.invoices.VendorView(ctx, partnerID, invoiceNo)
	if err != nil {
		return nil, err
	}

	data, ext, err := render(views, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	result := &ExportResult{
		Data:        data,
		Filename:    export.BuildFilename(invoiceNo, ext),
		ContentType: format.ContentType(),
	}
	s.archive(ctx, partnerID, result)
	return result, nil
}

func render(views []domain.TenantVendorView, format ExportFormat) (data []byte, ext string, err error) {
	if format == FormatXLSX {
		data, err = export.WriteWorkbook(views)
		return data, "xlsx", err
	}
	var buf bytes.Buffer
	if err = export.WriteTSV(&buf, views); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "tsv", nil
}

// archive uploads the rendered export when storage is configured and records
// a presigned link to the archived copy on the result. Failures are logged,
// never surfaced, since the download itself already succeeded.
func (s *exportService) archive(ctx context.Context, partnerID string, result *ExportResult) {
	if s.storage == nil || s.cfg == nil || s.cfg.S3Bucket == "" {
		return
	}
	key := fmt.Sprintf("exports/%s/%s", partnerID, result.Filename)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.S3Bucket,
		Key:         key,
		Body:        bytes.NewReader(result.Data),
		ContentType: result.ContentType,
		Size:        int64(len(result.Data)),
	})
	if err != nil {
		log.Printf("archiving export %s failed: %v", key, err)
		return
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.S3Bucket, key, int64(archiveLinkTTL.Seconds()))
	if err != nil {
		log.Printf("presigning archive %s failed: %v", key, err)
		return
	}
	result.ArchiveURL = url
}
