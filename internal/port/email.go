package port

import "context"

// OverdueNotice is the content of an overdue-invoice summary email.
type OverdueNotice struct {
	PartnerID     string
	InvoiceCount  int
	BalanceDue    float64
	OverdueAmount float64
	BucketLines   []string
}

// EmailSender delivers overdue-invoice notices.
type EmailSender interface {
	SendOverdueNotice(ctx context.Context, toEmail string, notice *OverdueNotice) error
}
