package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"billingdesk/internal/domain"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) List(ctx context.Context, partnerID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Detail(ctx context.Context, partnerID, invoiceNo string) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, partnerID, invoiceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceService) Metrics(ctx context.Context, partnerID string, basis domain.AmountBasis) (*domain.BillingMetrics, error) {
	args := m.Called(ctx, partnerID, basis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingMetrics), args.Error(1)
}

func (m *MockInvoiceService) Aging(ctx context.Context, partnerID string, reference time.Time) (*domain.AgingBuckets, error) {
	args := m.Called(ctx, partnerID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgingBuckets), args.Error(1)
}

func (m *MockInvoiceService) InvoiceTypes(ctx context.Context, partnerID string) ([]domain.InvoiceType, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceType), args.Error(1)
}

func (m *MockInvoiceService) VendorView(ctx context.Context, partnerID, invoiceNo string) ([]domain.TenantVendorView, error) {
	args := m.Called(ctx, partnerID, invoiceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantVendorView), args.Error(1)
}
