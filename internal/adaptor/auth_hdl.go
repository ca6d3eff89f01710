package adaptor

import (
	"encoding/json"
	"net/http"

	"reviewhub/internal/dto/request"
	"reviewhub/internal/usecase"
	"reviewhub/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.log.Warn("Signup failed", zap.String("username", req.Username), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Confirmation code sent", result)
}

// ObtainToken handles POST /api/auth/token.
func (h *AuthHandler) ObtainToken(w http.ResponseWriter, r *http.Request) {
	var req request.ObtainTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.ObtainToken(r.Context(), &req)
	if err != nil {
		h.log.Warn("Token request failed", zap.String("username", req.Username), zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Token issued", result)
}
