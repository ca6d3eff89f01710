package wire

import (
	"net/http"

	"reviewhub/internal/adaptor"
	"reviewhub/internal/data/repository"
	"reviewhub/internal/usecase"
	"reviewhub/pkg/mailer"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/token"
	"reviewhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service/handler graph and mounts all routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	signer token.Signer,
	mail mailer.Mailer,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, signer, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, signer, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	signer token.Signer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS)

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, signer, logger)
	wireCategory(r, handler.Category, repo, signer, logger)
	wireGenre(r, handler.Genre, repo, signer, logger)
	wireTitle(r, handler.Title, repo, signer, logger)
	wireReview(r, handler.Review, repo, signer, logger)
	wireComment(r, handler.Comment, repo, signer, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
