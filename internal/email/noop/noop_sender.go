package noop

import (
	"context"
	"log"

	"billingdesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notices to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendOverdueNotice(_ context.Context, toEmail string, notice *port.OverdueNotice) error {
	log.Printf("[NOOP EMAIL] Overdue notice for account %s to %s: %d open invoices, %.2f overdue",
		notice.PartnerID, toEmail, notice.InvoiceCount, notice.OverdueAmount)
	return nil
}
