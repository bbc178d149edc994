package middleware

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Capability именованное право из матрицы ролей
type Capability string

const (
	CapCreate Capability = "canCreate"
	CapEdit   Capability = "canEdit"
	CapDelete Capability = "canDelete"
	CapView   Capability = "canView"
)

// RequirePermission пропускает запрос только если роль пользователя
// дает указанное право. Ставится после Auth middleware.
func RequirePermission(capability Capability, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgNotAuthenticated)
			return
		}

		perms := domain.RolePermissions(claims.Role)
		if !hasCapability(perms, capability) {
			handlers.RespondForbidden(w, fmt.Sprintf("Insufficient permissions. Required: %s", capability))
			return
		}

		next(w, r)
	}
}

func hasCapability(perms domain.Permissions, capability Capability) bool {
	switch capability {
	case CapCreate:
		return perms.CanCreate
	case CapEdit:
		return perms.CanEdit
	case CapDelete:
		return perms.CanDelete
	case CapView:
		return perms.CanView
	default:
		return false
	}
}
