package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billingdesk/internal/billingapi"
	"billingdesk/internal/domain"
	"billingdesk/internal/service"
	"billingdesk/mocks"
)

func ptr(v float64) *float64 { return &v }

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
}

func TestInvoiceService_List_DerivesStatuses(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	repo := new(mocks.MockDiscountRepo)
	svc := service.NewInvoiceServiceWithClock(gateway, repo, fixedClock())

	gateway.On("ListInvoices", mock.Anything, "p-1").Return([]billingapi.RawInvoice{
		{InvoiceNo: "INV-1", DueDate: "2025-05-01", RemainingAmountIncludingVAT: 0},
		{InvoiceNo: "INV-2", DueDate: "2025-05-01", RemainingAmountIncludingVAT: 100},
		{InvoiceNo: "INV-3", DueDate: "2025-07-01", RemainingAmountIncludingVAT: 100},
	}, nil)

	invoices, err := svc.List(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Len(t, invoices, 3)
	assert.Equal(t, domain.StatusPaid, invoices[0].Status)
	assert.Equal(t, domain.StatusOverdue, invoices[1].Status)
	assert.Equal(t, domain.StatusUnpaid, invoices[2].Status)
	gateway.AssertExpectations(t)
}

func TestInvoiceService_List_GatewayError(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	svc := service.NewInvoiceService(gateway, new(mocks.MockDiscountRepo))

	gateway.On("ListInvoices", mock.Anything, "p-1").Return(nil, domain.ErrUpstreamFailure)

	invoices, err := svc.List(context.Background(), "p-1")

	assert.Nil(t, invoices)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestInvoiceService_Metrics(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	svc := service.NewInvoiceServiceWithClock(gateway, new(mocks.MockDiscountRepo), fixedClock())

	gateway.On("ListInvoices", mock.Anything, "p-1").Return([]billingapi.RawInvoice{
		{InvoiceNo: "INV-1", PostingDate: "2025-05-01", DueDate: "2025-05-31", AmountIncludingVAT: 1000},
		{InvoiceNo: "INV-2", PostingDate: "2025-06-01", DueDate: "2025-07-01", AmountIncludingVAT: 250, RemainingAmountIncludingVAT: 250},
		{InvoiceNo: "INV-3", PostingDate: "2025-04-01", DueDate: "2025-05-01", AmountIncludingVAT: 500, RemainingAmountIncludingVAT: 500},
	}, nil)

	m, err := svc.Metrics(context.Background(), "p-1", domain.BasisInclTax)

	assert.NoError(t, err)
	assert.InDelta(t, 1750.0, m.TotalInvoiced, 1e-9)
	assert.InDelta(t, 750.0, m.BalanceDue, 1e-9)
	assert.InDelta(t, 500.0, m.OverdueAmount, 1e-9)
	assert.Equal(t, 2, m.OpenInvoiceCount)
	assert.InDelta(t, 583.3333, m.AverageInvoice, 0.001)
}

func TestInvoiceService_Aging_DefaultsReferenceToClock(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	svc := service.NewInvoiceServiceWithClock(gateway, new(mocks.MockDiscountRepo), fixedClock())

	gateway.On("ListInvoices", mock.Anything, "p-1").Return([]billingapi.RawInvoice{
		// Due 45 days before the injected clock.
		{InvoiceNo: "INV-1", DueDate: "2025-05-01", AmountIncludingVAT: 200, RemainingAmountIncludingVAT: 200},
	}, nil)

	b, err := svc.Aging(context.Background(), "p-1", time.Time{})

	assert.NoError(t, err)
	assert.InDelta(t, 200.0, b.Days60, 1e-9)
}

func TestInvoiceService_InvoiceTypes(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	svc := service.NewInvoiceService(gateway, new(mocks.MockDiscountRepo))

	gateway.On("ListInvoiceTypes", mock.Anything, "p-1").Return([]billingapi.RawInvoiceType{
		{ID: "9", Description: "License Subscriptions"},
	}, nil)

	types, err := svc.InvoiceTypes(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Equal(t, []domain.InvoiceType{{ID: "9", Description: "License Subscriptions"}}, types)
}

func vendorViewFixture() *billingapi.RawInvoice {
	return &billingapi.RawInvoice{
		InvoiceNo: "INV-1",
		DueDate:   "2025-07-01",
		Lines: []billingapi.RawLine{
			{
				InvoiceTypeDesc: "License Subscriptions",
				BillingData: &billingapi.RawBillingData{Tenants: []billingapi.RawTenant{{
					TenantID:    "t-1",
					DisplayName: "Contoso A/S",
					CustomerRef: "C-100",
					Subscriptions: []billingapi.RawSubscription{
						{Description: "Microsoft 365 Business Standard", Amount: ptr(500), RetailAmount: ptr(650)},
					},
				}}},
			},
			{
				InvoiceTypeDesc: "License Subscriptions",
				BillingData: &billingapi.RawBillingData{Tenants: []billingapi.RawTenant{{
					TenantID:    "t-1",
					DisplayName: "Contoso A/S",
					CustomerRef: "C-100",
					Subscriptions: []billingapi.RawSubscription{
						{Description: "Microsoft 365 Business Standard", Amount: ptr(100), RetailAmount: ptr(130)},
					},
				}}},
			},
		},
	}
}

func TestInvoiceService_VendorView_MergesTenantsAcrossLines(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	repo := new(mocks.MockDiscountRepo)
	svc := service.NewInvoiceServiceWithClock(gateway, repo, fixedClock())

	gateway.On("GetInvoice", mock.Anything, "p-1", "INV-1").Return(vendorViewFixture(), nil)
	gateway.On("ListInvoiceTypes", mock.Anything, "p-1").Return([]billingapi.RawInvoiceType{}, nil)
	repo.On("GetForTenant", mock.Anything, "t-1").Return(map[string]float64{}, nil)

	views, err := svc.VendorView(context.Background(), "p-1", "INV-1")

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "t-1", views[0].TenantID)
	assert.False(t, views[0].MissingRef)
	assert.False(t, views[0].Discounted)
	assert.Len(t, views[0].Vendors, 1)
	assert.Equal(t, "License Subscriptions", views[0].Vendors[0].Name)
	// Both lines collapse into one product bucket with summed amounts.
	assert.Len(t, views[0].Vendors[0].Products, 1)
	assert.InDelta(t, 600.0, views[0].Vendors[0].Products[0].Amount, 1e-9)
}

func TestInvoiceService_VendorView_AppliesDiscountOverlay(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	repo := new(mocks.MockDiscountRepo)
	svc := service.NewInvoiceServiceWithClock(gateway, repo, fixedClock())

	gateway.On("GetInvoice", mock.Anything, "p-1", "INV-1").Return(vendorViewFixture(), nil)
	gateway.On("ListInvoiceTypes", mock.Anything, "p-1").Return([]billingapi.RawInvoiceType{}, nil)
	repo.On("GetForTenant", mock.Anything, "t-1").Return(map[string]float64{
		"license subscriptions|microsoft 365 business standard": 10,
	}, nil)

	views, err := svc.VendorView(context.Background(), "p-1", "INV-1")

	assert.NoError(t, err)
	product := views[0].Vendors[0].Products[0]
	assert.NotNil(t, product.DiscountRate)
	assert.InDelta(t, 10.0, *product.DiscountRate, 1e-9)
	assert.NotNil(t, product.DiscountedAmount)
	assert.InDelta(t, 540.0, *product.DiscountedAmount, 1e-9)
	assert.True(t, views[0].Discounted)
}

func TestInvoiceService_VendorView_DegradesWhenDiscountLookupFails(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	repo := new(mocks.MockDiscountRepo)
	svc := service.NewInvoiceServiceWithClock(gateway, repo, fixedClock())

	gateway.On("GetInvoice", mock.Anything, "p-1", "INV-1").Return(vendorViewFixture(), nil)
	gateway.On("ListInvoiceTypes", mock.Anything, "p-1").Return([]billingapi.RawInvoiceType{}, nil)
	repo.On("GetForTenant", mock.Anything, "t-1").Return(nil, assert.AnError)

	views, err := svc.VendorView(context.Background(), "p-1", "INV-1")

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Nil(t, views[0].Vendors[0].Products[0].DiscountRate)
	assert.False(t, views[0].Discounted)
}

func TestInvoiceService_VendorView_MissingRef(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	repo := new(mocks.MockDiscountRepo)
	svc := service.NewInvoiceServiceWithClock(gateway, repo, fixedClock())

	raw := vendorViewFixture()
	raw.Lines[0].BillingData.Tenants[0].CustomerRef = ""
	raw.Lines = raw.Lines[:1]

	gateway.On("GetInvoice", mock.Anything, "p-1", "INV-1").Return(raw, nil)
	gateway.On("ListInvoiceTypes", mock.Anything, "p-1").Return([]billingapi.RawInvoiceType{}, nil)
	repo.On("GetForTenant", mock.Anything, "t-1").Return(map[string]float64{}, nil)

	views, err := svc.VendorView(context.Background(), "p-1", "INV-1")

	assert.NoError(t, err)
	assert.True(t, views[0].MissingRef)
}

func TestInvoiceService_VendorView_NotFound(t *testing.T) {
	gateway := new(mocks.MockInvoiceGateway)
	svc := service.NewInvoiceService(gateway, new(mocks.MockDiscountRepo))

	gateway.On("GetInvoice", mock.Anything, "p-1", "INV-404").Return(nil, domain.ErrInvoiceNotFound)

	views, err := svc.VendorView(context.Background(), "p-1", "INV-404")

	assert.Nil(t, views)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}
