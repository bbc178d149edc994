package me

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/api/middleware"
)

// UserResponse вложенная модель пользователя в ответе
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MeResponse HTTP response model
type MeResponse struct {
	User *UserResponse `json:"user"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/me
// Роль берется из claims токена, без похода в БД: смена роли
// вступает в силу после перевыпуска токена.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "Not authenticated")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, MeResponse{
		User: &UserResponse{
			ID:    claims.UserID,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
		},
	})
}
