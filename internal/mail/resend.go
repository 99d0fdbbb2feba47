package mail

import (
	"context"
	"fmt"
	"os"

	"github.com/resend/resend-go/v2"
)

// defaultFrom is used when MAIL_FROM is not configured.
const defaultFrom = "noreply@depositclaim.local"

// Resend sends mail through the Resend API.
type Resend struct {
	client *resend.Client
	from   string
}

// NewResend builds a Resend sender from an API key.
func NewResend(apiKey, from string) *Resend {
	if from == "" {
		from = defaultFrom
	}
	return &Resend{client: resend.NewClient(apiKey), from: from}
}

// FromEnv returns a Resend sender when RESEND_API_KEY is set, otherwise a
// Log sender so unconfigured environments still exercise the send path.
func FromEnv(logger Logger) Sender {
	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		return NewResend(key, os.Getenv("MAIL_FROM"))
	}
	return NewLog(logger)
}

func (s *Resend) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}
	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("sending email to %s: %w", msg.To, err)
	}
	if sent == nil || sent.Id == "" {
		return fmt.Errorf("sending email to %s: no message id returned", msg.To)
	}
	return nil
}
