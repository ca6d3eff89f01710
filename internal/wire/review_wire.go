package wire

import (
	"reviewhub/internal/adaptor"
	"reviewhub/internal/data/repository"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	signer token.Signer,
	log *zap.Logger,
) {
	// Public: anyone can read reviews.
	r.Get("/api/titles/{titleID}/reviews", reviewHandler.GetReviews)
	r.Get("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.GetReviewByID)

	// Writing requires a token; edit/delete rights are checked in the
	// service so moderators can manage other users' reviews.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(signer, repo.User, log))

		r.Post("/api/titles/{titleID}/reviews", reviewHandler.CreateReview)
		r.Patch("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.UpdateReview)
		r.Delete("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.DeleteReview)
	})
}
