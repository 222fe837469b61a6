package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
	"github.com/proyectozoo/zoo-api/internal/store"
)

// SectionService manages the areas of the zoo.
type SectionService interface {
	List(ctx context.Context) ([]domain.Section, error)

	// Names returns every section name in alphabetical order.
	Names(ctx context.Context) ([]string, error)

	Get(ctx context.Context, id uuid.UUID) (*domain.Section, error)

	// Create stores a new section with the default photo.
	// Returns store.ErrNameExists when the name is taken.
	Create(ctx context.Context, section *domain.Section) (*domain.Section, error)

	// Update copies name and description onto the stored section.
	Update(ctx context.Context, section *domain.Section) (*domain.Section, error)

	// UpdatePhoto replaces the section image and returns the new path.
	UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error)

	// Delete removes the section. Returns store.ErrInvalidReference while
	// animals or events still belong to it.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Section, error)
}

// SectionServiceImpl implements SectionService.
type SectionServiceImpl struct {
	db       store.TxBeginner
	sections store.SectionStore
	photos   photoManager
	now      func() time.Time
	logger   *slog.Logger
}

var _ SectionService = (*SectionServiceImpl)(nil)

// NewSectionService creates a SectionService.
func NewSectionService(
	db store.TxBeginner,
	sections store.SectionStore,
	photos Photos,
	log *slog.Logger,
	opts ...Option,
) *SectionServiceImpl {
	o := buildOptions(opts)
	log = log.With(slog.String("component", "section_service"))
	return &SectionServiceImpl{
		db:       db,
		sections: sections,
		photos:   newPhotoManager(photos, "section", o.metrics, log),
		now:      o.now,
		logger:   log,
	}
}

// List returns every section.
func (s *SectionServiceImpl) List(ctx context.Context) ([]domain.Section, error) {
	sections, err := s.sections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// Names returns the section names.
func (s *SectionServiceImpl) Names(ctx context.Context) ([]string, error) {
	names, err := s.sections.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list section names: %w", err)
	}
	return names, nil
}

// Get returns one section.
func (s *SectionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	section, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve section: %w", err)
	}
	return section, nil
}

// Create stores a new section.
func (s *SectionServiceImpl) Create(ctx context.Context, in *domain.Section) (*domain.Section, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := s.now().UTC()
	section := &domain.Section{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		PhotoPath:   s.photos.DefaultPath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := section.Validate(); err != nil {
		return nil, err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.sections.WithTx(tx)
		if err := s.checkName(ctx, txStore, section); err != nil {
			return err
		}
		return txStore.Create(ctx, section)
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Debug("section name already taken", slog.String("name", section.Name))
		}
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	log.Info("section created", slog.String("section_id", section.ID.String()))
	return section, nil
}

// Update modifies name and description.
func (s *SectionServiceImpl) Update(ctx context.Context, in *domain.Section) (*domain.Section, error) {
	var updated *domain.Section
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.sections.WithTx(tx)

		section, err := txStore.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		section.ApplyUpdate(in)
		section.UpdatedAt = s.now().UTC()
		if err := section.Validate(); err != nil {
			return err
		}
		if err := s.checkName(ctx, txStore, section); err != nil {
			return err
		}
		if err := txStore.Update(ctx, section); err != nil {
			return err
		}
		updated = section
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	return updated, nil
}

// UpdatePhoto stores the new image, then drops the previous one.
func (s *SectionServiceImpl) UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error) {
	if _, err := s.sections.GetByID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to retrieve section: %w", err)
	}

	path, err := s.photos.save(ctx, upload)
	if err != nil {
		return "", err
	}

	var old string
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.sections.WithTx(tx)
		section, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		old = section.PhotoPath
		section.PhotoPath = path
		section.UpdatedAt = s.now().UTC()
		return txStore.Update(ctx, section)
	})
	if err != nil {
		s.photos.discard(ctx, path)
		return "", fmt.Errorf("failed to update section photo: %w", err)
	}

	s.photos.discard(ctx, old)
	return path, nil
}

// Delete removes a section and its photo.
func (s *SectionServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	var deleted *domain.Section
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.sections.WithTx(tx)
		section, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}
		deleted = section
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete section: %w", err)
	}

	s.photos.discard(ctx, deleted.PhotoPath)
	logger.FromContextOrDefault(ctx, s.logger).Info("section deleted", slog.String("section_id", id.String()))
	return deleted, nil
}

func (s *SectionServiceImpl) checkName(ctx context.Context, sections store.SectionStore, section *domain.Section) error {
	other, err := sections.GetByName(ctx, section.Name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != section.ID:
		return store.ErrNameExists
	}
	return nil
}
