package wire

import (
	"reviewhub/internal/adaptor"
	"reviewhub/internal/data/repository"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	repo *repository.Repository,
	signer token.Signer,
	log *zap.Logger,
) {
	r.Route("/api/categories", func(r chi.Router) {
		// Public: anyone can browse categories.
		r.Get("/", categoryHandler.GetCategories)

		// Catalog management is admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(signer, repo.User, log))
			r.Use(middleware.RequireAdmin(log))

			r.Post("/", categoryHandler.CreateCategory)
			r.Delete("/{slug}", categoryHandler.DeleteCategory)
		})
	})
}
