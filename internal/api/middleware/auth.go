package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/auth"
)

type claimsContextKey struct{}

const (
	msgNotAuthenticated = "Not authenticated"
	msgInvalidToken     = "Invalid token"
)

// Auth middleware аутентификации по JWT из httpOnly cookie.
// Разобранные claims кладутся в контекст запроса.
type Auth struct {
	tokens *auth.TokenManager
	logger Logger
}

// NewAuth создает middleware аутентификации
func NewAuth(tokens *auth.TokenManager, logger Logger) *Auth {
	return &Auth{
		tokens: tokens,
		logger: logger,
	}
}

// Handler оборачивает следующий обработчик проверкой токена
func (a *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			handlers.RespondUnauthorized(w, msgNotAuthenticated)
			return
		}

		claims, err := a.tokens.Parse(cookie.Value)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) {
				a.logger.Warn("Auth: unexpected token error: %v", err)
			}
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext возвращает claims аутентифицированного пользователя.
// Вне цепочки Auth middleware claims отсутствуют.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*auth.Claims)
	return claims, ok
}
