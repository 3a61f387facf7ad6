package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billingdesk/internal/domain"
)

// MockDiscountRepo is a mock implementation of port.DiscountRepository.
type MockDiscountRepo struct {
	mock.Mock
}

func (m *MockDiscountRepo) GetAll(ctx context.Context) (map[string]map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]float64), args.Error(1)
}

func (m *MockDiscountRepo) GetForTenant(ctx context.Context, tenantID string) (map[string]float64, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockDiscountRepo) Upsert(ctx context.Context, override *domain.DiscountOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockDiscountRepo) Delete(ctx context.Context, tenantID, productKey string) error {
	args := m.Called(ctx, tenantID, productKey)
	return args.Error(0)
}
