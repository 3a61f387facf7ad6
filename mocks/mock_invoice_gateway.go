package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billingdesk/internal/billingapi"
)

// MockInvoiceGateway is a mock implementation of port.InvoiceGateway.
type MockInvoiceGateway struct {
	mock.Mock
}

func (m *MockInvoiceGateway) ListInvoices(ctx context.Context, partnerID string) ([]billingapi.RawInvoice, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billingapi.RawInvoice), args.Error(1)
}

func (m *MockInvoiceGateway) GetInvoice(ctx context.Context, partnerID, invoiceNo string) (*billingapi.RawInvoice, error) {
	args := m.Called(ctx, partnerID, invoiceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billingapi.RawInvoice), args.Error(1)
}

func (m *MockInvoiceGateway) ListInvoiceTypes(ctx context.Context, partnerID string) ([]billingapi.RawInvoiceType, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billingapi.RawInvoiceType), args.Error(1)
}

func (m *MockInvoiceGateway) InvalidateCache() {
	m.Called()
}
