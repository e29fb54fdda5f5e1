package http

import (
	"context"
	"net"
	"net/http"

	"github.com/motohub/moto-catalog/internal/auth"
	rl "github.com/motohub/moto-catalog/internal/http/rate_limiter"
)

type contextKey string

const (
	userIDKey   = contextKey("user_id")
	userRoleKey = contextKey("user_role")
)

// AuthMiddleware validates the bearer token and stores the user id and role
// in the request context. Role enforcement stays in the handlers.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		if sub, ok := claims["sub"].(float64); ok {
			ctx = context.WithValue(ctx, userIDKey, int(sub))
		}
		if role, ok := claims["role"].(string); ok {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimitMiddleware throttles per client address; applied to the auth
// endpoints only.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

func GetUserRole(r *http.Request) string {
	if val, ok := r.Context().Value(userRoleKey).(string); ok {
		return val
	}
	return ""
}
