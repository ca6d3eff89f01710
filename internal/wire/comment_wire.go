package wire

import (
	"reviewhub/internal/adaptor"
	"reviewhub/internal/data/repository"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireComment(
	r chi.Router,
	commentHandler *adaptor.CommentHandler,
	repo *repository.Repository,
	signer token.Signer,
	log *zap.Logger,
) {
	// Public: anyone can read comments.
	r.Get("/api/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.GetComments)
	r.Get("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.GetCommentByID)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(signer, repo.User, log))

		r.Post("/api/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.CreateComment)
		r.Patch("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.UpdateComment)
		r.Delete("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.DeleteComment)
	})
}
