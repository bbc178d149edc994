package logout

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/auth"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle POST /api/logout
// Сбрасывает cookie сессии. Сам токен остается валидным до истечения TTL.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}
