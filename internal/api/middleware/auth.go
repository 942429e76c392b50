// Package middleware carries the HTTP middleware chain: role extraction from
// the X-Role header and per-request metrics.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// RoleHeader names the header carrying the acting role.
const RoleHeader = "X-Role"

type contextKey string

const roleContextKey contextKey = "role"

// RoleFromContext returns the acting role stored by RequireRole.
func RoleFromContext(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleContextKey).(domain.Role)
	return role, ok
}

// WithRole stores the acting role on the context; exported for handler tests.
func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleContextKey, role)
}

// RequireRole rejects requests without a valid X-Role header and stores the
// parsed role on the request context for the downstream handler.
func RequireRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := domain.Role(r.Header.Get(RoleHeader))
		if !role.IsValid() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "отсутствует или неизвестен заголовок " + RoleHeader,
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
	})
}
