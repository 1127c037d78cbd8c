package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/pkg/auth"
	"github.com/tair/inventory-tracker/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// ActorFromContext returns the authenticated username, or the default actor
func ActorFromContext(ctx context.Context) string {
	if username, ok := ctx.Value(UsernameKey).(string); ok && username != "" {
		return username
	}
	return domain.DefaultActor
}

// WriteGuard picks the middleware applied to mutating routes
func WriteGuard(authRequired bool) func(http.HandlerFunc) http.HandlerFunc {
	if authRequired {
		return AdminMiddleware
	}
	return OptionalAuthMiddleware
}

// bearerClaims extracts and validates the bearer token of r
func bearerClaims(r *http.Request) (*auth.Claims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "Authorization header required"
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "Invalid authorization header format"
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Invalid token")
		return nil, "Invalid token"
	}
	return claims, ""
}

func withClaims(r *http.Request, claims *auth.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UsernameKey, claims.Username)
	ctx = context.WithValue(ctx, RoleKey, claims.Role)
	return r.WithContext(ctx)
}

// AuthMiddleware requires a valid JWT
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, problem := bearerClaims(r)
		if claims == nil {
			logger.Warn(r.Context()).Str("path", r.URL.Path).Msg(problem)
			respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: problem})
			return
		}

		logger.Debug(r.Context()).
			Uint("user_id", claims.UserID).
			Str("username", claims.Username).
			Str("role", claims.Role).
			Msg("User authenticated")

		next.ServeHTTP(w, withClaims(r, claims))
	}
}

// AdminMiddleware checks if user has admin role
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)
		if role != auth.RoleAdmin {
			logger.Warn(r.Context()).
				Str("role", role).
				Msg("Admin access denied")
			respondJSON(w, http.StatusForbidden, Response{Success: false, Error: "Admin access required"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// OptionalAuthMiddleware validates JWT token if present, but doesn't require it
func OptionalAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		if claims, _ := bearerClaims(r); claims != nil {
			logger.Debug(r.Context()).
				Uint("user_id", claims.UserID).
				Str("username", claims.Username).
				Msg("Optional auth: User identified")
			r = withClaims(r, claims)
		}

		next.ServeHTTP(w, r)
	}
}
