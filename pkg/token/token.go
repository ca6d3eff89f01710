package token

import "time"

// Claims is the identity carried by a bearer token.
type Claims struct {
	UserID   string
	Username string
	Role     string
}

// Signer mints and verifies bearer tokens. It is injected into the auth
// service and the auth middleware so tests can substitute a fake.
type Signer interface {
	Generate(claims Claims) (token string, expiresAt time.Time, err error)
	Parse(token string) (*Claims, error)
}
