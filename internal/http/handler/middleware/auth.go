package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"stekfinance/internal/core"

	"go.uber.org/zap"
)

const ClaimsKey contextKey = "claims"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	ValidateAccessToken(token string) (core.Claims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Require rejects requests without a valid bearer access token and stores
// the caller's claims in the request context.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		token, ok := bearerToken(r)
		if !ok {
			unauthorized(w, "Authorization header is required")
			m.logs.Warnw("missing bearer token",
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		claims, err := m.validator.ValidateAccessToken(token)
		if err != nil {
			unauthorized(w, "invalid or expired access token")
			m.logs.Warnw("access token rejected",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFrom returns the claims stored by Require.
func ClaimsFrom(ctx context.Context) (core.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(core.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   detail,
	})
}
