package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationCode is the single-use credential mailed on signup.
// Only a bcrypt hash of the code is stored.
type ConfirmationCode struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	CodeHash  string    `db:"code_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
}
