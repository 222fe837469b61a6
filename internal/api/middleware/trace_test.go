package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
)

func TestTrace(t *testing.T) {
	t.Parallel()

	base, buf := logger.GetTestLogger(t)

	var seen string
	handler := Trace(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("handled")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/secciones/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(TraceIDHeader))

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, seen, e["trace_id"])
		assert.Equal(t, "/api/secciones/", e["path"])
		assert.Equal(t, http.MethodGet, e["method"])
	}
}

func TestLocale(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	handler := Locale(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithMessage(w, r, http.StatusOK, tr.T(r.Context(), i18n.ErrForbidden))
	}))

	tests := []struct {
		name   string
		query  string
		accept string
		want   string
	}{
		{name: "default", want: "No tienes permiso para realizar esta acción"},
		{name: "accept-language", accept: "en-US,en;q=0.9", want: "You are not allowed to perform this action"},
		{name: "lang wins", query: "?lang=es", accept: "en", want: "No tienes permiso para realizar esta acción"},
		{name: "unknown falls back", query: "?lang=ja", want: "No tienes permiso para realizar esta acción"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.JSONEq(t, `{"message":"`+tc.want+`"}`, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("Content-Language"))
		})
	}
}
