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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// GetCategories handles GET /api/categories.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)
	search := r.URL.Query().Get("search")

	result, err := h.service.GetCategories(r.Context(), search, page)
	if err != nil {
		h.log.Error("Get categories failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", result)
}

// CreateCategory handles POST /api/categories (admin only).
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.log.Warn("Create category failed", zap.String("slug", req.Slug), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Category created", result)
}

// DeleteCategory handles DELETE /api/categories/{slug} (admin only).
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteCategory(r.Context(), slug); err != nil {
		h.log.Warn("Delete category failed", zap.String("slug", slug), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
