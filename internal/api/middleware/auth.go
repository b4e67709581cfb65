// Package middleware carries the HTTP cross-cutting concerns: identity
// headers and request metrics. Authentication itself happens upstream
// at the gateway; this service trusts the forwarded headers.
package middleware

import (
	"context"
	"net/http"

	"github.com/studiofit/booking-service/internal/api/handlers"
	"github.com/studiofit/booking-service/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Auth requires the X-User-ID header and stashes the caller's identity
// in the request context. A missing role defaults to client.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing "+headerUserID+" header")
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		if role != domain.RoleAdmin {
			role = domain.RoleClient
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff rejects non-admin callers. Must run after Auth.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !RoleFromContext(r.Context()).IsStaff() {
			handlers.RespondForbidden(w, "staff access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext returns the authenticated user ID, or "" when the
// request skipped the Auth middleware.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// RoleFromContext returns the caller's role, defaulting to client.
func RoleFromContext(ctx context.Context) domain.Role {
	if role, ok := ctx.Value(userRoleKey).(domain.Role); ok {
		return role
	}
	return domain.RoleClient
}
