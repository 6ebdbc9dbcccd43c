// internal/api/handler/middleware.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"rideflow/internal/auth"
	"rideflow/internal/util"
)

type contextKey string

const (
	contextKeyUserID contextKey = "user_id"
	contextKeyEmail  contextKey = "user_email"
)

// UserIDFromContext returns the authenticated caller's user ID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKeyUserID).(string)
	return id, ok
}

// Authenticator returns a middleware verifying the bearer token and injecting
// the embedded identity into the request context. The identity is trusted once
// verified; the user record is not re-validated.
func Authenticator(tokens *auth.TokenManager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(logger, w, util.ErrUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(logger, w, util.ErrUnauthorized)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Token verification failed", "error", err)
				respondWithError(logger, w, util.ErrUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, contextKeyEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
