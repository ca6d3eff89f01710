package wire

import (
	"reviewhub/internal/adaptor"
	"reviewhub/internal/data/repository"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	signer token.Signer,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(signer, repo.User, log))

		// Any authenticated user manages their own profile.
		r.Get("/me", userHandler.GetSelf)
		r.Patch("/me", userHandler.UpdateSelf)

		// Account administration is admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(log))

			r.Get("/", userHandler.GetUsers)
			r.Post("/", userHandler.CreateUser)
			r.Get("/{username}", userHandler.GetUserByUsername)
			r.Patch("/{username}", userHandler.UpdateUser)
			r.Delete("/{username}", userHandler.DeleteUser)
		})
	})
}
