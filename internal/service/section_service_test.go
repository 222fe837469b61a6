package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/mocks"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/service"
	"github.com/proyectozoo/zoo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSectionService(t *testing.T) (*service.SectionServiceImpl, *mocks.MockSectionStore, *mocks.MockImageStore, sqlmock.Sqlmock) {
	t.Helper()
	db, m := newTxDB(t)
	sections := new(mocks.MockSectionStore)
	images := new(mocks.MockImageStore)
	svc := service.NewSectionService(db, sections, photos(images, "uploads/secciones"), discardLogger(),
		service.WithClock(clockAt(fixedNow)))
	t.Cleanup(func() {
		sections.AssertExpectations(t)
		images.AssertExpectations(t)
	})
	return svc, sections, images, m
}

func TestSectionService_Create(t *testing.T) {
	t.Parallel()

	t.Run("stores with default photo", func(t *testing.T) {
		t.Parallel()
		svc, sections, _, db := newSectionService(t)
		expectCommit(db)

		sections.On("GetByName", mock.Anything, "Sabana").Return(nil, store.ErrSectionNotFound)
		sections.On("Create", mock.Anything, mock.AnythingOfType("*domain.Section")).Return(nil)

		created, err := svc.Create(context.Background(), &domain.Section{Name: "Sabana", Description: "Llanura africana"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "uploads/secciones/default.png", created.PhotoPath)
		assert.Equal(t, fixedNow, created.CreatedAt)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		t.Parallel()
		svc, sections, _, db := newSectionService(t)
		expectRollback(db)

		sections.On("GetByName", mock.Anything, "Sabana").
			Return(&domain.Section{ID: uuid.New(), Name: "Sabana"}, nil)

		_, err := svc.Create(context.Background(), &domain.Section{Name: "Sabana", Description: "Llanura africana"})
		assert.ErrorIs(t, err, store.ErrNameExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
		sections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid input never reaches storage", func(t *testing.T) {
		t.Parallel()
		svc, _, _, _ := newSectionService(t)

		_, err := svc.Create(context.Background(), &domain.Section{Name: "Sa", Description: "corta"})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ElementsMatch(t, []string{"section.name.min", "section.description.min"}, verr.Keys())
	})
}

func TestSectionService_Update(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	existing := func() *domain.Section {
		return &domain.Section{ID: id, Name: "Sabana", Description: "Llanura africana", PhotoPath: "p.png"}
	}

	t.Run("keeping its own name is accepted", func(t *testing.T) {
		t.Parallel()
		svc, sections, _, db := newSectionService(t)
		expectCommit(db)

		sections.On("GetByID", mock.Anything, id).Return(existing(), nil)
		sections.On("GetByName", mock.Anything, "Sabana").Return(existing(), nil)
		sections.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Section) bool {
			return s.Name == "Sabana" && s.Description == "Nueva descripcion" && s.PhotoPath == "p.png"
		})).Return(nil)

		updated, err := svc.Update(context.Background(),
			&domain.Section{ID: id, Name: "Sabana", Description: "Nueva descripcion", PhotoPath: "ignored.png"})
		require.NoError(t, err)
		assert.Equal(t, "p.png", updated.PhotoPath)
	})

	t.Run("taking another section's name conflicts", func(t *testing.T) {
		t.Parallel()
		svc, sections, _, db := newSectionService(t)
		expectRollback(db)

		sections.On("GetByID", mock.Anything, id).Return(existing(), nil)
		sections.On("GetByName", mock.Anything, "Acuario").Return(&domain.Section{ID: uuid.New(), Name: "Acuario"}, nil)

		_, err := svc.Update(context.Background(), &domain.Section{ID: id, Name: "Acuario", Description: "Llanura africana"})
		assert.ErrorIs(t, err, store.ErrNameExists)
	})

	t.Run("missing section", func(t *testing.T) {
		t.Parallel()
		svc, sections, _, db := newSectionService(t)
		expectRollback(db)

		sections.On("GetByID", mock.Anything, id).Return(nil, store.ErrSectionNotFound)

		_, err := svc.Update(context.Background(), &domain.Section{ID: id, Name: "Sabana", Description: "Llanura africana"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSectionService_Delete(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("removes custom photo", func(t *testing.T) {
		t.Parallel()
		svc, sections, images, db := newSectionService(t)
		expectCommit(db)

		sections.On("GetByID", mock.Anything, id).Return(&domain.Section{ID: id, PhotoPath: "uploads/secciones/a.png"}, nil)
		sections.On("Delete", mock.Anything, id).Return(nil)
		images.On("Remove", mock.Anything, "uploads/secciones/a.png").Return(nil)

		deleted, err := svc.Delete(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, deleted.ID)
	})

	t.Run("keeps default photo", func(t *testing.T) {
		t.Parallel()
		svc, sections, images, db := newSectionService(t)
		expectCommit(db)

		sections.On("GetByID", mock.Anything, id).Return(&domain.Section{ID: id, PhotoPath: "uploads/secciones/default.png"}, nil)
		sections.On("Delete", mock.Anything, id).Return(nil)

		_, err := svc.Delete(context.Background(), id)
		require.NoError(t, err)
		images.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("section still in use", func(t *testing.T) {
		t.Parallel()
		svc, sections, _, db := newSectionService(t)
		expectRollback(db)

		sections.On("GetByID", mock.Anything, id).Return(&domain.Section{ID: id, PhotoPath: "x.png"}, nil)
		sections.On("Delete", mock.Anything, id).Return(store.ErrInvalidReference)

		_, err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, store.ErrInvalidReference)
	})
}

func TestSectionService_UpdatePhoto(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	upload := imagestore.Upload{Filename: "foto.png", Size: 3, Reader: bytes.NewReader([]byte("png"))}

	t.Run("replaces and removes the previous photo", func(t *testing.T) {
		t.Parallel()
		svc, sections, images, db := newSectionService(t)
		expectCommit(db)

		sections.On("GetByID", mock.Anything, id).Return(&domain.Section{ID: id, PhotoPath: "uploads/secciones/old.png"}, nil)
		images.On("Save", mock.Anything, upload, "uploads/secciones").
			Return(imagestore.Result{Path: "uploads/secciones/new.png"}, nil)
		sections.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Section) bool {
			return s.PhotoPath == "uploads/secciones/new.png"
		})).Return(nil)
		images.On("Remove", mock.Anything, "uploads/secciones/old.png").Return(nil)

		path, err := svc.UpdatePhoto(context.Background(), id, upload)
		require.NoError(t, err)
		assert.Equal(t, "uploads/secciones/new.png", path)
	})

	t.Run("rejected upload leaves the record alone", func(t *testing.T) {
		t.Parallel()
		svc, sections, images, _ := newSectionService(t)

		sections.On("GetByID", mock.Anything, id).Return(&domain.Section{ID: id}, nil)
		images.On("Save", mock.Anything, upload, "uploads/secciones").
			Return(imagestore.Result{}, imagestore.ErrUnsupportedFormat)

		_, err := svc.UpdatePhoto(context.Background(), id, upload)
		assert.ErrorIs(t, err, imagestore.ErrUnsupportedFormat)
		sections.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("failed update discards the new file", func(t *testing.T) {
		t.Parallel()
		svc, sections, images, db := newSectionService(t)
		expectRollback(db)

		sections.On("GetByID", mock.Anything, id).Return(&domain.Section{ID: id, PhotoPath: "old.png"}, nil)
		images.On("Save", mock.Anything, upload, "uploads/secciones").
			Return(imagestore.Result{Path: "uploads/secciones/new.png"}, nil)
		sections.On("Update", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
		images.On("Remove", mock.Anything, "uploads/secciones/new.png").Return(nil)

		_, err := svc.UpdatePhoto(context.Background(), id, upload)
		assert.ErrorContains(t, err, "connection reset")
	})
}
