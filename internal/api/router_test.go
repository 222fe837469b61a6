package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutes_AccessControl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		path   string
		token  string
		want   int
	}{
		// public
		{http.MethodGet, "/api/secciones/", "", http.StatusOK},
		{http.MethodGet, "/api/secciones/nombres", "", http.StatusOK},

		// authenticated
		{http.MethodGet, "/api/animales/", "", http.StatusForbidden},
		{http.MethodGet, "/api/animales/", "forged", http.StatusForbidden},
		{http.MethodGet, "/api/animales/", visitorToken, http.StatusOK},
		{http.MethodGet, "/api/eventos/", "", http.StatusForbidden},
		{http.MethodGet, "/api/comentarios/", "", http.StatusForbidden},
		{http.MethodGet, "/api/secciones/00000000-0000-0000-0000-000000000001", "", http.StatusForbidden},

		// admin only
		{http.MethodPost, "/api/animales/alta", visitorToken, http.StatusForbidden},
		{http.MethodDelete, "/api/animales/00000000-0000-0000-0000-000000000001", visitorToken, http.StatusForbidden},
		{http.MethodPost, "/api/secciones/alta", visitorToken, http.StatusForbidden},
		{http.MethodPut, "/api/eventos/", visitorToken, http.StatusForbidden},
		{http.MethodGet, "/api/usuarios/", visitorToken, http.StatusForbidden},
		{http.MethodGet, "/api/usuarios/", adminToken, http.StatusOK},
		{http.MethodPatch, "/api/usuarios/rol/00000000-0000-0000-0000-000000000001", visitorToken, http.StatusForbidden},
	}

	ts := newTestServer(t)
	ts.sections.On("List", anyCtx).Return(nil, nil)
	ts.sections.On("Names", anyCtx).Return([]string{"Sabana"}, nil)
	ts.animals.On("List", anyCtx).Return(nil, nil)
	ts.users.On("List", anyCtx).Return(nil, nil)

	for _, tc := range tests {
		rec := ts.do(t, tc.method, tc.path, tc.token, nil)
		assert.Equal(t, tc.want, rec.Code, "%s %s with %q", tc.method, tc.path, tc.token)
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/jaulas/", visitorToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
