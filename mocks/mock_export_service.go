package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billingdesk/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, partnerID, invoiceNo string, format service.ExportFormat) (*service.ExportResult, error) {
	args := m.Called(ctx, partnerID, invoiceNo, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
