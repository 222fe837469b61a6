package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/proyectozoo/zoo-api/internal/api"
	"github.com/proyectozoo/zoo-api/internal/api/middleware"
	"github.com/proyectozoo/zoo-api/internal/api/shared"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/mocks"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/service/auth"
	"github.com/proyectozoo/zoo-api/internal/store"
)

// Tokens understood by the fake JWT service.
const (
	adminToken   = "admin-token"
	visitorToken = "visitor-token"
	otherToken   = "other-token"
)

type testServer struct {
	router   http.Handler
	animals  *mocks.MockAnimalService
	sections *mocks.MockSectionService
	events   *mocks.MockEventService
	comments *mocks.MockCommentService
	users    *mocks.MockUserService

	adminID, visitorID, otherID uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		animals:   &mocks.MockAnimalService{},
		sections:  &mocks.MockSectionService{},
		events:    &mocks.MockEventService{},
		comments:  &mocks.MockCommentService{},
		users:     &mocks.MockUserService{},
		adminID:   uuid.New(),
		visitorID: uuid.New(),
		otherID:   uuid.New(),
	}

	accounts := map[string]*domain.User{
		adminToken:   {ID: ts.adminID, Email: "admin@zoo.es", Role: domain.RoleAdmin},
		visitorToken: {ID: ts.visitorID, Email: "ana@zoo.es", Role: domain.RoleUser},
		otherToken:   {ID: ts.otherID, Email: "luis@zoo.es", Role: domain.RoleUser},
	}
	userStore := &mocks.MockUserStore{}
	for _, u := range accounts {
		userStore.On("GetByID", mock.Anything, u.ID).Return(u, nil).Maybe()
	}
	jwt := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			u, ok := accounts[token]
			if !ok {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: u.ID, Email: u.Email}, nil
		},
	}

	tr, err := i18n.New("es-ES")
	require.NoError(t, err)
	authz := auth.NewAuthorizer(jwt, userStore, nil)

	deps := api.HandlerDeps{
		Errors:         api.NewErrorResponder(tr, imagestore.DefaultMaxBytes),
		Translator:     tr,
		Admins:         authz,
		MaxUploadBytes: imagestore.DefaultMaxBytes,
	}

	r := chi.NewRouter()
	r.Use(middleware.Locale(tr))
	api.RegisterRoutes(r, api.Handlers{
		Animals:  api.NewAnimalHandler(ts.animals, deps),
		Sections: api.NewSectionHandler(ts.sections, deps),
		Events:   api.NewEventHandler(ts.events, deps),
		Comments: api.NewCommentHandler(ts.comments, deps),
		Users:    api.NewUserHandler(ts.users, deps),
	}, middleware.NewAuthMiddleware(authz, tr, nil))
	ts.router = r

	t.Cleanup(func() {
		ts.animals.AssertExpectations(t)
		ts.sections.AssertExpectations(t)
		ts.events.AssertExpectations(t)
		ts.comments.AssertExpectations(t)
		ts.users.AssertExpectations(t)
	})
	return ts
}

// do sends a JSON request. body may be nil, a string or a value to encode.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// upload sends a multipart request with one "file" part of size bytes.
func (ts *testServer) upload(t *testing.T, method, path, token, filename string, size int) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile(api.UploadField, filename)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0x89}, size))
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("other", "value"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.TokenHeader, token)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body shared.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Message
}

var errBoom = store.NewStoreError("animal", "list", "query failed",
	io.ErrUnexpectedEOF)
