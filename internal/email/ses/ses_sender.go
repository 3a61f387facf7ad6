package ses

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"billingdesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendOverdueNotice(ctx context.Context, toEmail string, notice *port.OverdueNotice) error {
	subject := fmt.Sprintf("Overdue invoices on account %s", notice.PartnerID)
	textBody := buildNoticeText(notice)
	htmlBody := buildNoticeHTML(notice)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildNoticeText(notice *port.OverdueNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account %s has %d open invoices.\n\n", notice.PartnerID, notice.InvoiceCount)
	fmt.Fprintf(&b, "Balance due: %.2f\nOverdue: %.2f\n\nAging:\n", notice.BalanceDue, notice.OverdueAmount)
	for _, line := range notice.BucketLines {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}

func buildNoticeHTML(notice *port.OverdueNotice) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>Account <strong>%s</strong> has %d open invoices.</p>", notice.PartnerID, notice.InvoiceCount)
	fmt.Fprintf(&b, "<p>Balance due: %.2f<br>Overdue: %.2f</p><ul>", notice.BalanceDue, notice.OverdueAmount)
	for _, line := range notice.BucketLines {
		fmt.Fprintf(&b, "<li>%s</li>", line)
	}
	b.WriteString("</ul></body></html>")
	return b.String()
}
