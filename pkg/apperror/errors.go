// Package apperror defines the error kinds services return. Handlers map
// them to HTTP status codes in one place instead of matching strings.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation   = errors.New("validation")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Wrap attaches a kind to a formatted message so callers can test the kind
// with errors.Is and show the message to the client.
func Wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Message strips the kind prefix added by Wrap, leaving the client-facing
// text.
func Message(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, kind := range []error{ErrValidation, ErrConflict, ErrUnauthorized, ErrForbidden, ErrNotFound} {
		if errors.Is(err, kind) {
			prefix := kind.Error() + ": "
			if idx := strings.Index(msg, prefix); idx >= 0 {
				return msg[idx+len(prefix):]
			}
		}
	}
	return msg
}
