package wire

import (
	"reviewhub/internal/adaptor"
	"reviewhub/internal/data/repository"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(
	r chi.Router,
	genreHandler *adaptor.GenreHandler,
	repo *repository.Repository,
	signer token.Signer,
	log *zap.Logger,
) {
	r.Route("/api/genres", func(r chi.Router) {
		// Public: anyone can browse genres.
		r.Get("/", genreHandler.GetGenres)

		// Catalog management is admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(signer, repo.User, log))
			r.Use(middleware.RequireAdmin(log))

			r.Post("/", genreHandler.CreateGenre)
			r.Delete("/{slug}", genreHandler.DeleteGenre)
		})
	})
}
