package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/auth"
	authService "github.com/m04kA/SMC-FleetService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Email and password are required"
	msgInvalidCredentials = "Invalid credentials"
)

type Handler struct {
	service AuthService
	tokens  TokenIssuer
	logger  Logger
}

func NewHandler(service AuthService, tokens TokenIssuer, logger Logger) *Handler {
	return &Handler{
		service: service,
		tokens:  tokens,
		logger:  logger,
	}
}

// Handle POST /api/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, authService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /login - Failed to authenticate: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("POST /login - Failed to issue token: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /login - User authenticated: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainUser(user))
}
