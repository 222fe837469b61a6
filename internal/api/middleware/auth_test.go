package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/mocks"
	"github.com/proyectozoo/zoo-api/internal/platform/metrics"
	"github.com/proyectozoo/zoo-api/internal/service/auth"
	"github.com/proyectozoo/zoo-api/internal/store"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New("es-ES")
	require.NoError(t, err)
	return tr
}

// echoUser writes the id and email Authenticate stored in the context.
func echoUser(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.UserID(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"id":    id.String(),
		"email": shared.UserEmail(r.Context()),
	})
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		token       string
		validateErr error
		wantStatus  int
		wantReason  string
		wantMessage string
	}{
		{
			name:       "valid token",
			token:      "valid-token",
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing token",
			wantStatus:  http.StatusForbidden,
			wantReason:  reasonMissing,
			wantMessage: "Es necesario iniciar sesión",
		},
		{
			name:        "expired token",
			token:       "expired-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusForbidden,
			wantReason:  reasonExpired,
			wantMessage: "El token ha expirado",
		},
		{
			name:        "invalid token",
			token:       "invalid-token",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusForbidden,
			wantReason:  reasonInvalid,
			wantMessage: "El token no es válido",
		},
		{
			name:        "unexpected error is still a rejection",
			token:       "weird-token",
			validateErr: errors.New("boom"),
			wantStatus:  http.StatusForbidden,
			wantReason:  reasonInvalid,
			wantMessage: "El token no es válido",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			jwt := &mocks.MockJWTService{
				ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
					if tc.validateErr != nil {
						return nil, tc.validateErr
					}
					if token == "" {
						return nil, auth.ErrMissingToken
					}
					return &auth.Claims{UserID: userID, Email: "ana@zoo.es"}, nil
				},
			}
			m := metrics.New()
			mw := NewAuthMiddleware(auth.NewAuthorizer(jwt, &mocks.MockUserStore{}, nil), newTranslator(t), m)

			req := httptest.NewRequest(http.MethodGet, "/api/animales/", nil)
			if tc.token != "" {
				req.Header.Set(TokenHeader, tc.token)
			}
			rec := httptest.NewRecorder()
			mw.Authenticate(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.JSONEq(t,
					`{"id":"`+userID.String()+`","email":"ana@zoo.es"}`,
					rec.Body.String())
				return
			}
			assert.Equal(t, tc.wantMessage, errorBody(t, rec).Error)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthRejectionsTotal.WithLabelValues(tc.wantReason)))
		})
	}
}

func TestAuthMiddleware_IgnoresBearerHeader(t *testing.T) {
	t.Parallel()

	jwt := &mocks.MockJWTService{Claims: &auth.Claims{UserID: uuid.New()}}
	mw := NewAuthMiddleware(auth.NewAuthorizer(jwt, &mocks.MockUserStore{}, nil), newTranslator(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/animales/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	mw.Authenticate(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_LocalizedRejection(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	mw := NewAuthMiddleware(auth.NewAuthorizer(&mocks.MockJWTService{}, &mocks.MockUserStore{}, nil), tr, nil)
	handler := Locale(tr)(mw.Authenticate(http.HandlerFunc(echoUser)))

	req := httptest.NewRequest(http.MethodGet, "/api/animales/?lang=en", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You need to log in", errorBody(t, rec).Error)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	t.Parallel()

	adminID, visitorID, ghostID := uuid.New(), uuid.New(), uuid.New()

	users := &mocks.MockUserStore{}
	users.On("GetByID", mock.Anything, adminID).Return(&domain.User{ID: adminID, Role: domain.RoleAdmin}, nil)
	users.On("GetByID", mock.Anything, visitorID).Return(&domain.User{ID: visitorID, Role: domain.RoleUser}, nil)
	users.On("GetByID", mock.Anything, ghostID).Return(nil, store.ErrUserNotFound)

	tokens := map[string]uuid.UUID{"admin": adminID, "visitor": visitorID, "ghost": ghostID}
	jwt := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			id, ok := tokens[token]
			if !ok {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: id}, nil
		},
	}

	m := metrics.New()
	mw := NewAuthMiddleware(auth.NewAuthorizer(jwt, users, nil), newTranslator(t), m)
	handler := mw.Authenticate(mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		token string
		want  int
	}{
		{token: "admin", want: http.StatusNoContent},
		{token: "visitor", want: http.StatusForbidden},
		{token: "ghost", want: http.StatusForbidden},
		{token: "forged", want: http.StatusForbidden},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodDelete, "/api/animales/x", nil)
		req.Header.Set(TokenHeader, tc.token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, tc.want, rec.Code, tc.token)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthRejectionsTotal.WithLabelValues(reasonForbidden)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthRejectionsTotal.WithLabelValues(reasonInvalid)))
}

func TestAuthMiddleware_RequireAdminWithoutAuthenticate(t *testing.T) {
	t.Parallel()

	mw := NewAuthMiddleware(auth.NewAuthorizer(&mocks.MockJWTService{}, &mocks.MockUserStore{}, nil), newTranslator(t), nil)
	rec := httptest.NewRecorder()
	mw.RequireAdmin(http.HandlerFunc(echoUser)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
