package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billingdesk/internal/domain"
)

// MockDiscountService is a mock implementation of service.DiscountService.
type MockDiscountService struct {
	mock.Mock
}

func (m *MockDiscountService) GetAll(ctx context.Context) (map[string]map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]float64), args.Error(1)
}

func (m *MockDiscountService) Set(ctx context.Context, tenantID, vendorName, productName string, rate *float64) (*domain.DiscountOverride, error) {
	args := m.Called(ctx, tenantID, vendorName, productName, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscountOverride), args.Error(1)
}

func (m *MockDiscountService) Remove(ctx context.Context, tenantID, vendorName, productName string) error {
	args := m.Called(ctx, tenantID, vendorName, productName)
	return args.Error(0)
}
