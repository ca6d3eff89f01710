package mailer

import (
	"context"

	"go.uber.org/zap"
)

type logMailer struct {
	log *zap.Logger
}

// NewLogMailer writes mail to the log instead of sending it. Used in debug
// mode so signup works without an SMTP relay.
func NewLogMailer(log *zap.Logger) Mailer {
	return &logMailer{log: log.With(zap.String("mailer", "log"))}
}

func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	m.log.Info("Mail delivered to log",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
