package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/auth"
	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func issueCookie(t *testing.T, tokens *auth.TokenManager, role string) *http.Cookie {
	t.Helper()
	token, err := tokens.Issue(&domain.User{
		ID:    1,
		Name:  "Ann",
		Email: "ann@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func TestAuth_PutsClaimsIntoContext(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	mw := NewAuth(tokens, nopLogger{})

	var got *auth.Claims
	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		got = claims
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
	req.AddCookie(issueCookie(t, tokens, domain.RoleAdmin))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}

func TestAuth_MissingCookie(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	mw := NewAuth(tokens, nopLogger{})

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Not authenticated"}`, rec.Body.String())
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	mw := NewAuth(tokens, nopLogger{})

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "not-a-jwt"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
}

func TestAuth_TokenSignedWithOtherSecret(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	otherTokens := auth.NewTokenManager("other-secret", time.Hour)
	mw := NewAuth(tokens, nopLogger{})

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
	req.AddCookie(issueCookie(t, otherTokens, domain.RoleAdmin))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePermission(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	mw := NewAuth(tokens, nopLogger{})

	tests := []struct {
		name       string
		role       string
		capability Capability
		wantStatus int
	}{
		{name: "admin can delete", role: domain.RoleAdmin, capability: CapDelete, wantStatus: http.StatusOK},
		{name: "dispatcher can create", role: domain.RoleDispatcher, capability: CapCreate, wantStatus: http.StatusOK},
		{name: "dispatcher cannot delete", role: domain.RoleDispatcher, capability: CapDelete, wantStatus: http.StatusForbidden},
		{name: "viewer can view", role: domain.RoleViewer, capability: CapView, wantStatus: http.StatusOK},
		{name: "viewer cannot edit", role: domain.RoleViewer, capability: CapEdit, wantStatus: http.StatusForbidden},
		{name: "unknown role is view only", role: "supervisor", capability: CapCreate, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := mw.Handler(RequirePermission(tt.capability, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
			req.AddCookie(issueCookie(t, tokens, tt.role))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequirePermission_ErrorMessage(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	mw := NewAuth(tokens, nopLogger{})

	handler := mw.Handler(RequirePermission(CapDelete, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/drivers", nil)
	req.AddCookie(issueCookie(t, tokens, domain.RoleViewer))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Insufficient permissions. Required: canDelete"}`, rec.Body.String())
}
