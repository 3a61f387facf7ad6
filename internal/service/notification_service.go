package service

import (
	"context"
	"fmt"
	"time"

	"billingdesk/internal/billing"
	"billingdesk/internal/config"
	"billingdesk/internal/domain"
	"billingdesk/internal/port"
)

// NotificationService sends overdue-invoice summary notices.
type NotificationService interface {
	SendOverdueNotice(ctx context.Context, partnerID string) error
}

type notificationService struct {
	invoices InvoiceService
	sender   port.EmailSender
	cfg      *config.EmailConfig
	now      func() time.Time
}

// NewNotificationService creates a new NotificationService implementation.
func NewNotificationService(invoices InvoiceService, sender port.EmailSender, cfg *config.EmailConfig) NotificationService {
	return &notificationService{invoices: invoices, sender: sender, cfg: cfg, now: time.Now}
}

// SendOverdueNotice summarizes the partner's open balance and aging buckets
// and emails it to the configured recipient. Nothing is sent when no invoice
// is overdue.
func (s *notificationService) SendOverdueNotice(ctx context.Context, partnerID string) error {
	invoices, err := s.invoices.List(ctx, partnerID)
	if err != nil {
		return err
	}

	now := s.now()
	metrics := billing.ComputeMetrics(invoices, domain.BasisInclTax, now)
	if metrics.OverdueAmount == 0 {
		return nil
	}
	buckets := billing.ComputeAgingBuckets(invoices, now)

	notice := &port.OverdueNotice{
		PartnerID:     partnerID,
		InvoiceCount:  metrics.OpenInvoiceCount,
		BalanceDue:    metrics.BalanceDue,
		OverdueAmount: metrics.OverdueAmount,
		BucketLines: []string{
			fmt.Sprintf("0-30 days: %.2f", buckets.Current),
			fmt.Sprintf("31-60 days: %.2f", buckets.Days60),
			fmt.Sprintf("61-90 days: %.2f", buckets.Days90),
			fmt.Sprintf("90+ days: %.2f", buckets.Over90),
		},
	}
	if err := s.sender.SendOverdueNotice(ctx, s.cfg.ToAddress, notice); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEmailSendFailed, err)
	}
	return nil
}
