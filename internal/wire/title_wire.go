package wire

import (
	"reviewhub/internal/adaptor"
	"reviewhub/internal/data/repository"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTitle(
	r chi.Router,
	titleHandler *adaptor.TitleHandler,
	repo *repository.Repository,
	signer token.Signer,
	log *zap.Logger,
) {
	// Public: anyone can browse the catalog.
	r.Get("/api/titles", titleHandler.GetTitles)
	r.Get("/api/titles/{titleID}", titleHandler.GetTitleByID)

	// Catalog management is admin only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(signer, repo.User, log))
		r.Use(middleware.RequireAdmin(log))

		r.Post("/api/titles", titleHandler.CreateTitle)
		r.Patch("/api/titles/{titleID}", titleHandler.UpdateTitle)
		r.Delete("/api/titles/{titleID}", titleHandler.DeleteTitle)
	})
}
