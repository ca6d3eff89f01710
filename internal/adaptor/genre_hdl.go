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

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /api/genres.
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)
	search := r.URL.Query().Get("search")

	result, err := h.service.GetGenres(r.Context(), search, page)
	if err != nil {
		h.log.Error("Get genres failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved", result)
}

// CreateGenre handles POST /api/genres (admin only).
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		h.log.Warn("Create genre failed", zap.String("slug", req.Slug), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Genre created", result)
}

// DeleteGenre handles DELETE /api/genres/{slug} (admin only).
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteGenre(r.Context(), slug); err != nil {
		h.log.Warn("Delete genre failed", zap.String("slug", slug), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
