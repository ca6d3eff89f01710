package wire

import (
	"reviewhub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public: anyone can request a confirmation code and trade it for a token.
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/token", authHandler.ObtainToken)
}
