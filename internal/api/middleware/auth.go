package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/dom/adboard/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// OptionalAuth resolves a bearer token when one is sent but lets anonymous
// requests through untouched; those authenticate with body credentials
// instead. A token that is present but invalid is still a hard failure.
func OptionalAuth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := validateHeader(authService, authHeader)
			if !ok {
				writeAuthError(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth guards the token-layer endpoints that have no body-credential
// fallback.
func RequireAuth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.RequireAuth] missing authorization header")
				writeAuthError(w, "Authorization header required")
				return
			}

			userID, ok := validateHeader(authService, authHeader)
			if !ok {
				writeAuthError(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateHeader(authService *service.AuthService, header string) (uint, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		log.Printf("ERROR [middleware.auth] invalid authorization header format")
		return 0, false
	}

	userID, err := authService.ValidateToken(parts[1])
	if err != nil {
		log.Printf("ERROR [middleware.auth] token validation failed: %v", err)
		return 0, false
	}

	return userID, true
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": message,
	})
}

func GetUserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}
