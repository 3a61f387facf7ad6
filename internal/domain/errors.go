package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidRate     = errors.New("discount rate is not a finite number")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUpstreamFailure = errors.New("billing API request failed")
	ErrSessionExpired  = errors.New("billing API session expired")
	ErrExportFailed    = errors.New("export generation failed")
	ErrEmailSendFailed = errors.New("notification email failed to send")
)
