package port

import (
	"context"

	"billingdesk/internal/domain"
)

// DiscountRepository persists per-tenant discount overrides. Keys are the
// normalized vendor/product keys produced by the billing package; rates are
// percentages in [0,100] already clamped and rounded by the service.
type DiscountRepository interface {
	// GetAll returns every override grouped as tenantID -> productKey -> rate.
	GetAll(ctx context.Context) (map[string]map[string]float64, error)
	// GetForTenant returns productKey -> rate for one tenant.
	GetForTenant(ctx context.Context, tenantID string) (map[string]float64, error)
	// Upsert inserts or updates an override keyed by (tenant, product key).
	Upsert(ctx context.Context, override *domain.DiscountOverride) error
	// Delete removes an override; deleting a missing row is not an error.
	Delete(ctx context.Context, tenantID, productKey string) error
}
