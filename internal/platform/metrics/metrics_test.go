package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()

	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/animales/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/api/secciones/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	for _, path := range []string{"/api/animales/1", "/api/animales/2", "/api/secciones/"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/animales/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/secciones/", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestBusinessCounters(t *testing.T) {
	t.Parallel()

	m := New()
	m.UserRegistered()
	m.CommentCreated()
	m.CommentCreated()
	m.Login(true)
	m.Login(false)
	m.Upload("animal", UploadStored)
	m.Upload("animal", UploadRejected)
	m.AuthRejected("expired")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UsersRegisteredTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CommentsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsTotal.WithLabelValues("animal", UploadRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthRejectionsTotal.WithLabelValues("expired")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.UserRegistered()
		m.CommentCreated()
		m.Login(true)
		m.Upload("user", UploadFailed)
		m.AuthRejected("missing")
		require.NoError(t, m.RegisterDB(nil, "zoo"))
	})

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	rec := httptest.NewRecorder()
	m.Middleware(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	t.Parallel()

	m := New()
	m.UserRegistered()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "zoo_users_registered_total 1"))
}
