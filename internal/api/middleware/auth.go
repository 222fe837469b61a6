package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
	"github.com/proyectozoo/zoo-api/internal/platform/metrics"
	"github.com/proyectozoo/zoo-api/internal/service/auth"
)

// TokenHeader carries the raw JWT, without a scheme prefix.
const TokenHeader = "token"

// Rejection reasons recorded in metrics.
const (
	reasonMissing   = "missing"
	reasonInvalid   = "invalid"
	reasonExpired   = "expired"
	reasonForbidden = "forbidden"
)

// Authenticator verifies tokens and reads the current role of a user.
// *auth.Authorizer satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
	IsAdminID(ctx context.Context, id uuid.UUID) bool
}

// AuthMiddleware guards routes that need a logged-in user or an administrator.
type AuthMiddleware struct {
	authz      Authenticator
	translator *i18n.Translator
	metrics    *metrics.Metrics
}

// NewAuthMiddleware creates a new AuthMiddleware. m may be nil.
func NewAuthMiddleware(authz Authenticator, translator *i18n.Translator, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{
		authz:      authz,
		translator: translator,
		metrics:    m,
	}
}

// Authenticate validates the token header and adds the user's id and email to
// the request context. Missing, invalid and expired tokens get 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			m.reject(w, r, reasonMissing, i18n.ErrTokenMissing, auth.ErrMissingToken)
			return
		}

		claims, err := m.authz.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				m.reject(w, r, reasonExpired, i18n.ErrTokenExpired, err)
			case errors.Is(err, auth.ErrMissingToken):
				m.reject(w, r, reasonMissing, i18n.ErrTokenMissing, err)
			default:
				m.reject(w, r, reasonInvalid, i18n.ErrTokenInvalid, err)
			}
			return
		}

		ctx := shared.SetUser(r.Context(), claims.UserID, claims.Email)
		log := logger.FromContextOrDefault(ctx, slog.Default()).
			With(slog.String("user_id", claims.UserID.String()))
		next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
	})
}

// RequireAdmin lets the request through only when the authenticated user
// holds ADMIN right now. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := shared.UserID(r.Context())
		if !ok {
			m.reject(w, r, reasonMissing, i18n.ErrTokenMissing, auth.ErrMissingToken)
			return
		}
		if !m.authz.IsAdminID(r.Context(), id) {
			m.reject(w, r, reasonForbidden, i18n.ErrForbidden, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, reason string, key i18n.Key, err error) {
	m.metrics.AuthRejected(reason)
	shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, m.translator.T(r.Context(), key), err)
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.UserID(r.Context())
}
