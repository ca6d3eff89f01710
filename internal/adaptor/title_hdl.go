package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"reviewhub/internal/dto/request"
	"reviewhub/internal/usecase"
	"reviewhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// GetTitles handles GET /api/titles with category/genre/name/year filters.
func (h *TitleHandler) GetTitles(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)
	query := r.URL.Query()

	filter := request.TitleListFilter{
		Category: query.Get("category"),
		Genre:    query.Get("genre"),
		Name:     query.Get("name"),
	}
	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid year filter", nil)
			return
		}
		filter.Year = &year
	}

	result, err := h.service.GetTitles(r.Context(), filter, page)
	if err != nil {
		h.log.Error("Get titles failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Titles retrieved", result)
}

// GetTitleByID handles GET /api/titles/{titleID}.
func (h *TitleHandler) GetTitleByID(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	result, err := h.service.GetTitleByID(r.Context(), titleID)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Title retrieved", result)
}

// CreateTitle handles POST /api/titles (admin only).
func (h *TitleHandler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var req request.TitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateTitle(r.Context(), &req)
	if err != nil {
		h.log.Warn("Create title failed", zap.String("name", req.Name), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Title created", result)
}

// UpdateTitle handles PATCH /api/titles/{titleID} (admin only).
func (h *TitleHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	var req request.TitleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateTitle(r.Context(), titleID, &req)
	if err != nil {
		h.log.Warn("Update title failed", zap.String("title_id", titleID), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Title updated", result)
}

// DeleteTitle handles DELETE /api/titles/{titleID} (admin only).
func (h *TitleHandler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	if err := h.service.DeleteTitle(r.Context(), titleID); err != nil {
		h.log.Warn("Delete title failed", zap.String("title_id", titleID), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
