package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billingdesk/internal/config"
	"billingdesk/internal/domain"
	"billingdesk/internal/port"
	"billingdesk/internal/service"
	"billingdesk/mocks"
)

func TestNotificationService_SendsNoticeWhenOverdue(t *testing.T) {
	invoices := new(mocks.MockInvoiceService)
	sender := new(mocks.MockEmailSender)
	cfg := &config.EmailConfig{ToAddress: "finance@example.com"}
	svc := service.NewNotificationService(invoices, sender, cfg)

	invoices.On("List", mock.Anything, "p-1").Return([]domain.Invoice{
		{Number: "INV-1", DueDate: "2020-01-01", AmountInclTax: 500, Status: domain.StatusOverdue},
		{Number: "INV-2", DueDate: "2999-01-01", AmountInclTax: 250, Status: domain.StatusUnpaid},
	}, nil)
	sender.On("SendOverdueNotice", mock.Anything, "finance@example.com", mock.MatchedBy(func(n *port.OverdueNotice) bool {
		return n.PartnerID == "p-1" &&
			n.InvoiceCount == 2 &&
			n.OverdueAmount == 500 &&
			n.BalanceDue == 750 &&
			len(n.BucketLines) == 4
	})).Return(nil)

	err := svc.SendOverdueNotice(context.Background(), "p-1")

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestNotificationService_SkipsWhenNothingOverdue(t *testing.T) {
	invoices := new(mocks.MockInvoiceService)
	sender := new(mocks.MockEmailSender)
	svc := service.NewNotificationService(invoices, sender, &config.EmailConfig{ToAddress: "finance@example.com"})

	invoices.On("List", mock.Anything, "p-1").Return([]domain.Invoice{
		{Number: "INV-1", DueDate: "2999-01-01", AmountInclTax: 250, Status: domain.StatusUnpaid},
	}, nil)

	err := svc.SendOverdueNotice(context.Background(), "p-1")

	assert.NoError(t, err)
	sender.AssertNotCalled(t, "SendOverdueNotice")
}

func TestNotificationService_WrapsSenderError(t *testing.T) {
	invoices := new(mocks.MockInvoiceService)
	sender := new(mocks.MockEmailSender)
	svc := service.NewNotificationService(invoices, sender, &config.EmailConfig{ToAddress: "finance@example.com"})

	invoices.On("List", mock.Anything, "p-1").Return([]domain.Invoice{
		{Number: "INV-1", DueDate: "2020-01-01", AmountInclTax: 500, Status: domain.StatusOverdue},
	}, nil)
	sender.On("SendOverdueNotice", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	err := svc.SendOverdueNotice(context.Background(), "p-1")

	assert.ErrorIs(t, err, domain.ErrEmailSendFailed)
}

func TestNotificationService_ListError(t *testing.T) {
	invoices := new(mocks.MockInvoiceService)
	sender := new(mocks.MockEmailSender)
	svc := service.NewNotificationService(invoices, sender, &config.EmailConfig{})

	invoices.On("List", mock.Anything, "p-1").Return(nil, domain.ErrUpstreamFailure)

	err := svc.SendOverdueNotice(context.Background(), "p-1")

	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	sender.AssertNotCalled(t, "SendOverdueNotice")
}
