package service

import (
	"context"
	"log"
	"math"

	"billingdesk/internal/billing"
	"billingdesk/internal/domain"
	"billingdesk/internal/port"
)

// DiscountService manages per-tenant discount overrides. Rates are clamped to
// [0,100] and rounded to two decimals on write; a nil or NaN rate removes the
// override. Every write invalidates the upstream response cache so concurrent
// sessions reconcile against server truth on the next read.
type DiscountService interface {
	GetAll(ctx context.Context) (map[string]map[string]float64, error)
	Set(ctx context.Context, tenantID, vendorName, productName string, rate *float64) (*domain.DiscountOverride, error)
	Remove(ctx context.Context, tenantID, vendorName, productName string) error
}

type discountService struct {
	repo    port.DiscountRepository
	gateway port.InvoiceGateway
}

// NewDiscountService creates a new DiscountService implementation.
func NewDiscountService(repo port.DiscountRepository, gateway port.InvoiceGateway) DiscountService {
	return &discountService{repo: repo, gateway: gateway}
}

func (s *discountService) GetAll(ctx context.Context) (map[string]map[string]float64, error) {
	return s.repo.GetAll(ctx)
}

func (s *discountService) Set(ctx context.Context, tenantID, vendorName, productName string, rate *float64) (*domain.DiscountOverride, error) {
	defer s.gateway.InvalidateCache()

	if rate == nil || math.IsNaN(*rate) {
		if err := s.repo.Delete(ctx, tenantID, billing.ProductKey(vendorName, productName)); err != nil {
			log.Printf("discount removal for tenant %s failed: %v", tenantID, err)
			return nil, err
		}
		return nil, nil
	}

	override := &domain.DiscountOverride{
		TenantID:    tenantID,
		ProductKey:  billing.ProductKey(vendorName, productName),
		VendorName:  vendorName,
		ProductName: productName,
		Rate:        billing.ClampRate(*rate),
	}
	if err := s.repo.Upsert(ctx, override); err != nil {
		log.Printf("discount upsert for tenant %s failed: %v", tenantID, err)
		return nil, err
	}
	return override, nil
}

func (s *discountService) Remove(ctx context.Context, tenantID, vendorName, productName string) error {
	defer s.gateway.InvalidateCache()

	if err := s.repo.Delete(ctx, tenantID, billing.ProductKey(vendorName, productName)); err != nil {
		log.Printf("discount removal for tenant %s failed: %v", tenantID, err)
		return err
	}
	return nil
}
