package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
)

// ResendMailer sends mail through the Resend HTTP API.
type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (m *ResendMailer) Send(ctx context.Context, msg booking.Message) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend: send to %s: %w", msg.To, err)
	}
	return nil
}
