package mailer

import "context"

// Mailer delivers notification mail. The auth service only depends on this
// interface; production wiring picks SMTP, tests and dev runs a logger.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
