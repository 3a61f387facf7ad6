package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"billingdesk/internal/domain"
	"billingdesk/internal/port"
)

type discountRepo struct {
	db *sqlx.DB
}

// NewDiscountRepo creates a new PostgreSQL-backed DiscountRepository.
func NewDiscountRepo(db *sqlx.DB) port.DiscountRepository {
	return &discountRepo{db: db}
}

type discountRow struct {
	TenantID   string  `db:"tenant_id"`
	ProductKey string  `db:"product_key"`
	Rate       float64 `db:"rate"`
}

func (r *discountRepo) GetAll(ctx context.Context) (map[string]map[string]float64, error) {
	var rows []discountRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT tenant_id, product_key, rate FROM tenant_discounts"); err != nil {
		return nil, fmt.Errorf("discountRepo.GetAll: %w", err)
	}

	out := make(map[string]map[string]float64)
	for _, row := range rows {
		byKey, ok := out[row.TenantID]
		if !ok {
			byKey = make(map[string]float64)
			out[row.TenantID] = byKey
		}
		byKey[row.ProductKey] = row.Rate
	}
	return out, nil
}

func (r *discountRepo) GetForTenant(ctx context.Context, tenantID string) (map[string]float64, error) {
	var rows []discountRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT tenant_id, product_key, rate FROM tenant_discounts WHERE tenant_id = $1",
		tenantID); err != nil {
		return nil, fmt.Errorf("discountRepo.GetForTenant: %w", err)
	}

	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.ProductKey] = row.Rate
	}
	return out, nil
}

func (r *discountRepo) Upsert(ctx context.Context, override *domain.DiscountOverride) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO tenant_discounts (tenant_id, product_key, vendor_name, product_name, rate, updated_at)
		VALUES (:tenant_id, :product_key, :vendor_name, :product_name, :rate, NOW())
		ON CONFLICT (tenant_id, product_key)
		DO UPDATE SET vendor_name = EXCLUDED.vendor_name,
		              product_name = EXCLUDED.product_name,
		              rate = EXCLUDED.rate,
		              updated_at = NOW()`, override)
	if err != nil {
		return fmt.Errorf("discountRepo.Upsert: %w", err)
	}
	return nil
}

func (r *discountRepo) Delete(ctx context.Context, tenantID, productKey string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM tenant_discounts WHERE tenant_id = $1 AND product_key = $2",
		tenantID, productKey)
	if err != nil {
		return fmt.Errorf("discountRepo.Delete: %w", err)
	}
	return nil
}
