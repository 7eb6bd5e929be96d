package mailer

import (
	"context"
	"log"
)

// Mailer delivers a single message. Implementations report failure through
// the returned error; callers decide whether delivery is fatal (for booking
// notifications it never is).
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// ConsoleMailer logs messages instead of delivering them. Used in local
// development and as the default when SMTP is not configured.
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) Send(_ context.Context, to, subject, _, textBody string) error {
	log.Printf("[DEV-EMAIL] to=%s subject=%q body=%q", to, subject, textBody)
	return nil
}
