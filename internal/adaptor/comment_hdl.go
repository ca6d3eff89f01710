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

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// GetComments handles GET /api/titles/{titleID}/reviews/{reviewID}/comments.
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	page := parsePagination(r)

	result, err := h.service.GetComments(r.Context(), titleID, reviewID, page)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved", result)
}

// GetCommentByID handles GET /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}.
func (h *CommentHandler) GetCommentByID(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	result, err := h.service.GetCommentByID(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Comment retrieved", result)
}

// CreateComment handles POST /api/titles/{titleID}/reviews/{reviewID}/comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateComment(r.Context(), titleID, reviewID, actor, &req)
	if err != nil {
		h.log.Warn("Create comment failed", zap.String("review_id", reviewID), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Comment created", result)
}

// UpdateComment handles PATCH /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}.
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateComment(r.Context(), titleID, reviewID, commentID, actor, &req)
	if err != nil {
		h.log.Warn("Update comment failed", zap.String("comment_id", commentID), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Comment updated", result)
}

// DeleteComment handles DELETE /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteComment(r.Context(), titleID, reviewID, commentID, actor); err != nil {
		h.log.Warn("Delete comment failed", zap.String("comment_id", commentID), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
