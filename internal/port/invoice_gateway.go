package port

import (
	"context"

	"billingdesk/internal/billingapi"
)

// InvoiceGateway abstracts the upstream partner billing API.
type InvoiceGateway interface {
	ListInvoices(ctx context.Context, partnerID string) ([]billingapi.RawInvoice, error)
	GetInvoice(ctx context.Context, partnerID, invoiceNo string) (*billingapi.RawInvoice, error)
	ListInvoiceTypes(ctx context.Context, partnerID string) ([]billingapi.RawInvoiceType, error)
	// InvalidateCache drops cached upstream responses so the next read
	// reconciles against server truth.
	InvalidateCache()
}
