package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/proyectozoo/zoo-api/internal/api"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/service"
	"github.com/proyectozoo/zoo-api/internal/store"
)

var anyCtx = mock.Anything

func TestAnimalHandler_Get(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	leo := &domain.Animal{ID: uuid.New(), Name: "Leonardo", Species: "Panthera leo"}
	missing := uuid.New()
	ts.animals.On("Get", anyCtx, leo.ID).Return(leo, nil)
	ts.animals.On("Get", anyCtx, missing).Return(nil, fmt.Errorf("get animal: %w", store.ErrAnimalNotFound))

	rec := ts.do(t, http.MethodGet, "/api/animales/"+leo.ID.String(), visitorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Animal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Leonardo", got.Name)

	rec = ts.do(t, http.MethodGet, "/api/animales/"+missing.String(), visitorToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No se ha encontrado el animal", decodeError(t, rec).Error)

	rec = ts.do(t, http.MethodGet, "/api/animales/not-a-uuid", visitorToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "El identificador no es válido", decodeError(t, rec).Error)
}

func TestAnimalHandler_ListFailureHidesCause(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.animals.On("List", anyCtx).Return(nil, errBoom)

	rec := ts.do(t, http.MethodGet, "/api/animales/", visitorToken, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.NotEmpty(t, body.Error)
	assert.NotContains(t, rec.Body.String(), "query failed")
}

func TestAnimalHandler_GetByNameAndPopular(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	leo := &domain.Animal{ID: uuid.New(), Name: "Leonardo"}
	ts.animals.On("GetByName", anyCtx, "Leonardo").Return(leo, nil)
	ts.animals.On("Popular", anyCtx, service.PopularWeek).Return(leo, nil)
	ts.animals.On("Popular", anyCtx, service.PopularMonth).Return(nil, store.ErrAnimalNotFound)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/animales/nombre/Leonardo", visitorToken, nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/animales/popular/semana", visitorToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/animales/popular/mes", visitorToken, nil).Code)
}

func TestAnimalHandler_Create(t *testing.T) {
	t.Parallel()

	sectionID := uuid.New()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		created := &domain.Animal{ID: uuid.New()}
		ts.animals.On("Create", anyCtx, mock.MatchedBy(func(a *domain.Animal) bool {
			return a.Name == "Leonardo" && a.SectionID == sectionID && a.BirthDate.String() == "2019-05-01"
		})).Return(created, nil)

		rec := ts.do(t, http.MethodPost, "/api/animales/alta", adminToken, map[string]any{
			"name":       "Leonardo",
			"species":    "Panthera leo",
			"birth_date": "2019-05-01",
			"sex":        "M",
			"section_id": sectionID,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var body api.IDResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, created.ID, body.ID)
	})

	t.Run("validation error is localized", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		verr := domain.NewValidationError("animal")
		verr.Add("name", "min", "4")
		ts.animals.On("Create", anyCtx, mock.Anything).Return(nil, verr)

		rec := ts.do(t, http.MethodPost, "/api/animales/alta?lang=en", adminToken, map[string]any{
			"name": "Leo", "section_id": sectionID,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "The submitted data is not valid", body.Error)
		assert.Equal(t, []string{"The name field must be at least 4 characters long"}, body.Details)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.animals.On("Create", anyCtx, mock.Anything).
			Return(nil, fmt.Errorf("failed to create animal: %w", store.ErrNameExists))

		rec := ts.do(t, http.MethodPost, "/api/animales/alta", adminToken, map[string]any{"name": "Leonardo"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Ya existe un animal con ese nombre", decodeError(t, rec).Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/animales/alta", adminToken, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "La petición no es válida", decodeError(t, rec).Error)

		rec = ts.do(t, http.MethodPost, "/api/animales/alta", adminToken, `{"birth_date":"01/05/2019"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnimalHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	id := uuid.New()
	ts.animals.On("Update", anyCtx, mock.MatchedBy(func(a *domain.Animal) bool { return a.ID == id })).
		Return(&domain.Animal{ID: id}, nil)
	ts.animals.On("Delete", anyCtx, id).Return(&domain.Animal{ID: id}, nil)

	rec := ts.do(t, http.MethodPut, "/api/animales/", adminToken, map[string]any{"id": id, "name": "Leonardo"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Animal modificado correctamente", decodeMessage(t, rec))

	rec = ts.do(t, http.MethodPut, "/api/animales/", adminToken, map[string]any{"name": "Leonardo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "update without id")

	rec = ts.do(t, http.MethodDelete, "/api/animales/"+id.String(), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Animal borrado correctamente", decodeMessage(t, rec))
}

func TestAnimalHandler_UpdatePhoto(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("stored", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.animals.On("UpdatePhoto", anyCtx, id, mock.MatchedBy(func(u imagestore.Upload) bool {
			return u.Filename == "leo.png" && u.Size == 1<<20 && u.Reader != nil
		})).Return("uploads/animales/abc.png", nil)

		for _, route := range []struct{ method, path string }{
			{http.MethodPost, "/api/animales/imagen/" + id.String()},
			{http.MethodPatch, "/api/animales/modificar/imagen/" + id.String()},
		} {
			rec := ts.upload(t, route.method, route.path, adminToken, "leo.png", 1<<20)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, `{"path":"uploads/animales/abc.png"}`, rec.Body.String())
		}
	})

	t.Run("oversized body never reaches the service", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		rec := ts.upload(t, http.MethodPost, "/api/animales/imagen/"+id.String(), adminToken, "leo.png", 6<<20)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.animals.AssertNotCalled(t, "UpdatePhoto", anyCtx, mock.Anything, mock.Anything)
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.animals.On("UpdatePhoto", anyCtx, id, mock.Anything).
			Return("", fmt.Errorf("%w: %q", imagestore.ErrUnsupportedFormat, "leo.gif"))

		rec := ts.upload(t, http.MethodPost, "/api/animales/imagen/"+id.String(), adminToken, "leo.gif", 1<<20)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "La imagen debe ser .jpg, .jpeg o .png", decodeError(t, rec).Error)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		rec := ts.upload(t, http.MethodPost, "/api/animales/imagen/"+id.String(), adminToken, "", 0)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No se ha enviado ninguna imagen", decodeError(t, rec).Error)
	})
}
