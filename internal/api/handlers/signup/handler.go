package signup

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	authService "github.com/m04kA/SMC-FleetService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "All fields are required"
	msgInvalidEmail       = "Invalid email format"
	msgEmailTaken         = "Email already registered"
)

// emailRegexp грубая проверка формата, без попытки полного разбора RFC 5322
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/signup
// Регистрация не выдает cookie сессии: клиент логинится отдельно.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Age == 0 {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	if !emailRegexp.MatchString(req.Email) {
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	user, err := h.service.Signup(r.Context(), req.Name, req.Age, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrEmailTaken):
			h.logger.Warn("POST /signup - Email already registered: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, authService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /signup - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /signup - User registered: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainUser(user))
}
