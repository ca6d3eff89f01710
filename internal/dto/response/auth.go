package response

import "time"

// SignupResponse echoes the accepted identity; the confirmation code itself
// travels by mail only.
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
