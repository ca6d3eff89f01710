package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"reviewhub/pkg/utils"
)

type smtpMailer struct {
	config utils.EmailConfig
}

// NewSMTPMailer sends mail through a plain SMTP relay.
func NewSMTPMailer(config utils.EmailConfig) Mailer {
	return &smtpMailer{config: config}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.config.From, to, subject, body)

	// net/smtp has no context support; rely on the server side to time out
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
