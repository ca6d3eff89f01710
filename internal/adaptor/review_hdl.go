package adaptor

import (
	"encoding/json"
	"net/http"

	"reviewhub/internal/dto/request"
	"reviewhub/internal/usecase"
	"reviewhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /api/titles/{titleID}/reviews.
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	page := parsePagination(r)

	result, err := h.service.GetReviews(r.Context(), titleID, page)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", result)
}

// GetReviewByID handles GET /api/titles/{titleID}/reviews/{reviewID}.
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	result, err := h.service.GetReviewByID(r.Context(), titleID, reviewID)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Review retrieved", result)
}

// CreateReview handles POST /api/titles/{titleID}/reviews.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateReview(r.Context(), titleID, actor, &req)
	if err != nil {
		h.log.Warn("Create review failed", zap.String("title_id", titleID), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Review created", result)
}

// UpdateReview handles PATCH /api/titles/{titleID}/reviews/{reviewID}.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateReview(r.Context(), titleID, reviewID, actor, &req)
	if err != nil {
		h.log.Warn("Update review failed", zap.String("review_id", reviewID), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Review updated", result)
}

// DeleteReview handles DELETE /api/titles/{titleID}/reviews/{reviewID}.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteReview(r.Context(), titleID, reviewID, actor); err != nil {
		h.log.Warn("Delete review failed", zap.String("review_id", reviewID), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
