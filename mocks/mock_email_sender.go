package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billingdesk/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendOverdueNotice(ctx context.Context, toEmail string, notice *port.OverdueNotice) error {
	args := m.Called(ctx, toEmail, notice)
	return args.Error(0)
}
