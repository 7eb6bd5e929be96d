package mailer

import (
	"context"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer sends mail through gomail. A fresh dialer per send keeps the
// implementation connection-free between requests.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	msg, err := m.buildMessage(to, subject, htmlBody, textBody)
	if err != nil {
		return err
	}

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	// Respect ctx deadline if it's sooner than our config timeout.
	wait := m.cfg.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

func (m *SMTPMailer) buildMessage(to, subject, htmlBody, textBody string) (*gomail.Message, error) {
	msg := gomail.NewMessage()

	from := strings.TrimSpace(m.cfg.From)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	msg.SetHeader("From", from)

	to = strings.TrimSpace(to)
	if to == "" {
		return nil, ErrInvalidMessage{Reason: "recipient is required"}
	}
	msg.SetHeader("To", to)

	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}
	msg.SetHeader("Subject", subject)

	hasText := strings.TrimSpace(textBody) != ""
	hasHTML := strings.TrimSpace(htmlBody) != ""

	switch {
	case hasText && hasHTML:
		msg.SetBody("text/plain", textBody)
		msg.AddAlternative("text/html", htmlBody)
	case hasHTML:
		msg.SetBody("text/html", htmlBody)
	case hasText:
		msg.SetBody("text/plain", textBody)
	default:
		return nil, ErrInvalidMessage{Reason: "either text or html body is required"}
	}

	return msg, nil
}
