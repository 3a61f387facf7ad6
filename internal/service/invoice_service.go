package service

import (
	"context"
	"log"
	"time"

	"billingdesk/internal/billing"
	"billingdesk/internal/domain"
	"billingdesk/internal/port"
)

// InvoiceService exposes the partner's invoice data: the flat list with
// derived statuses, the mapped detail, summary metrics, aging buckets, and
// the aggregated vendor view with the discount overlay applied.
type InvoiceService interface {
	List(ctx context.Context, partnerID string) ([]domain.Invoice, error)
	Detail(ctx context.Context, partnerID, invoiceNo string) (*domain.InvoiceDetail, error)
	Metrics(ctx context.Context, partnerID string, basis domain.AmountBasis) (*domain.BillingMetrics, error)
	Aging(ctx context.Context, partnerID string, reference time.Time) (*domain.AgingBuckets, error)
	InvoiceTypes(ctx context.Context, partnerID string) ([]domain.InvoiceType, error)
	VendorView(ctx context.Context, partnerID, invoiceNo string) ([]domain.TenantVendorView, error)
}

type invoiceService struct {
	gateway      port.InvoiceGateway
	discountRepo port.DiscountRepository
	now          func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(gateway port.InvoiceGateway, discountRepo port.DiscountRepository) InvoiceService {
	return NewInvoiceServiceWithClock(gateway, discountRepo, time.Now)
}

// NewInvoiceServiceWithClock creates an InvoiceService with an injectable
// clock (for testing date-derived statuses).
func NewInvoiceServiceWithClock(gateway port.InvoiceGateway, discountRepo port.DiscountRepository, now func() time.Time) InvoiceService {
	return &invoiceService{gateway: gateway, discountRepo: discountRepo, now: now}
}

func (s *invoiceService) List(ctx context.Context, partnerID string) ([]domain.Invoice, error) {
	raw, err := s.gateway.ListInvoices(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return billing.MapInvoices(raw, s.today()), nil
}

func (s *invoiceService) Detail(ctx context.Context, partnerID, invoiceNo string) (*domain.InvoiceDetail, error) {
	raw, err := s.gateway.GetInvoice(ctx, partnerID, invoiceNo)
	if err != nil {
		return nil, err
	}
	types, err := s.invoiceTypes(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return billing.MapInvoiceDetail(raw, types, s.today()), nil
}

func (s *invoiceService) Metrics(ctx context.Context, partnerID string, basis domain.AmountBasis) (*domain.BillingMetrics, error) {
	invoices, err := s.List(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	m := billing.ComputeMetrics(invoices, basis, s.now())
	return &m, nil
}

func (s *invoiceService) Aging(ctx context.Context, partnerID string, reference time.Time) (*domain.AgingBuckets, error) {
	invoices, err := s.List(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if reference.IsZero() {
		reference = s.now()
	}
	b := billing.ComputeAgingBuckets(invoices, reference)
	return &b, nil
}

func (s *invoiceService) InvoiceTypes(ctx context.Context, partnerID string) ([]domain.InvoiceType, error) {
	return s.invoiceTypes(ctx, partnerID)
}

// VendorView maps the invoice detail, merges tenant breakdowns across lines,
// aggregates each tenant's subscriptions per vendor, and overlays stored
// discount rates. A failing discount lookup degrades to the undiscounted
// view instead of failing the request.
func (s *invoiceService) VendorView(ctx context.Context, partnerID, invoiceNo string) ([]domain.TenantVendorView, error) {
	detail, err := s.Detail(ctx, partnerID, invoiceNo)
	if err != nil {
		return nil, err
	}

	views := make([]domain.TenantVendorView, 0)
	for _, tenant := range mergeTenants(detail.Lines) {
		view := domain.TenantVendorView{
			TenantID:    tenant.ID,
			DisplayName: tenant.DisplayName,
			CustomerRef: tenant.CustomerRef,
			MissingRef:  tenant.CustomerRef == "",
			Vendors:     billing.AggregateVendors(tenant.Subscriptions),
		}
		s.applyDiscounts(ctx, &view)
		views = append(views, view)
	}
	return views, nil
}

// mergeTenants collapses tenant breakdowns that repeat across invoice lines
// into one breakdown per tenant id, concatenating their subscriptions. Order
// of first appearance is kept; the aggregation re-sorts its own output.
func mergeTenants(lines []domain.InvoiceLine) []domain.TenantBreakdown {
	var order []string
	byID := map[string]*domain.TenantBreakdown{}

	for li := range lines {
		for ti := range lines[li].Tenants {
			t := &lines[li].Tenants[ti]
			existing, ok := byID[t.ID]
			if !ok {
				merged := *t
				byID[t.ID] = &merged
				order = append(order, t.ID)
				continue
			}
			existing.Subscriptions = append(existing.Subscriptions, t.Subscriptions...)
			existing.Amount += t.Amount
			existing.RetailAmount += t.RetailAmount
		}
	}

	out := make([]domain.TenantBreakdown, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

func (s *invoiceService) applyDiscounts(ctx context.Context, view *domain.TenantVendorView) {
	rates, err := s.discountRepo.GetForTenant(ctx, view.TenantID)
	if err != nil {
		log.Printf("discount lookup for tenant %s failed, rendering without overlay: %v", view.TenantID, err)
		return
	}
	if len(rates) == 0 {
		return
	}

	var fullTotal, discountedTotal float64
	for vi := range view.Vendors {
		vendor := &view.Vendors[vi]
		for pi := range vendor.Products {
			product := &vendor.Products[pi]
			fullTotal += product.Amount
			rate, ok := rates[billing.ProductKey(vendor.Name, product.Name)]
			if !ok {
				discountedTotal += product.Amount
				continue
			}
			discounted := billing.DiscountedAmount(product.Amount, rate)
			product.DiscountRate = &rate
			product.DiscountedAmount = &discounted
			discountedTotal += discounted
		}
	}
	view.Discounted = billing.IsDiscounted(fullTotal, discountedTotal)
}

func (s *invoiceService) invoiceTypes(ctx context.Context, partnerID string) ([]domain.InvoiceType, error) {
	raw, err := s.gateway.ListInvoiceTypes(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	types := make([]domain.InvoiceType, 0, len(raw))
	for _, t := range raw {
		types = append(types, domain.InvoiceType{ID: t.ID, Description: t.Description})
	}
	return types, nil
}

func (s *invoiceService) today() string {
	return s.now().Format("2006-01-02")
}
