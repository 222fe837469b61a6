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

// Popularity windows.
const (
	PopularWeek  = "week"
	PopularMonth = "month"
)

// AnimalService manages the animals of the zoo.
type AnimalService interface {
	List(ctx context.Context) ([]domain.Animal, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Animal, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Animal, error)

	// GetByName matches the name exactly.
	GetByName(ctx context.Context, name string) (*domain.Animal, error)

	// Popular returns the most commented animal in the last week or month.
	// Returns store.ErrAnimalNotFound when nothing was commented in the window.
	Popular(ctx context.Context, window string) (*domain.Animal, error)

	// PopularSince returns the animal with most comments created at or after since.
	PopularSince(ctx context.Context, since time.Time) (*domain.Animal, error)

	Create(ctx context.Context, animal *domain.Animal) (*domain.Animal, error)
	Update(ctx context.Context, animal *domain.Animal) (*domain.Animal, error)
	UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Animal, error)
}

// AnimalServiceImpl implements AnimalService.
type AnimalServiceImpl struct {
	db      store.TxBeginner
	animals store.AnimalStore
	photos  photoManager
	now     func() time.Time
	logger  *slog.Logger
}

var _ AnimalService = (*AnimalServiceImpl)(nil)

// NewAnimalService creates an AnimalService.
func NewAnimalService(
	db store.TxBeginner,
	animals store.AnimalStore,
	photos Photos,
	log *slog.Logger,
	opts ...Option,
) *AnimalServiceImpl {
	o := buildOptions(opts)
	log = log.With(slog.String("component", "animal_service"))
	return &AnimalServiceImpl{
		db:      db,
		animals: animals,
		photos:  newPhotoManager(photos, "animal", o.metrics, log),
		now:     o.now,
		logger:  log,
	}
}

func (s *AnimalServiceImpl) List(ctx context.Context) ([]domain.Animal, error) {
	animals, err := s.animals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	return animals, nil
}

func (s *AnimalServiceImpl) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Animal, error) {
	animals, err := s.animals.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals of section: %w", err)
	}
	return animals, nil
}

func (s *AnimalServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Animal, error) {
	animal, err := s.animals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve animal: %w", err)
	}
	return animal, nil
}

func (s *AnimalServiceImpl) GetByName(ctx context.Context, name string) (*domain.Animal, error) {
	animal, err := s.animals.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve animal by name: %w", err)
	}
	return animal, nil
}

// Popular resolves window against the service clock.
func (s *AnimalServiceImpl) Popular(ctx context.Context, window string) (*domain.Animal, error) {
	now := s.now()
	var since time.Time
	switch window {
	case PopularWeek:
		since = now.AddDate(0, 0, -7)
	case PopularMonth:
		since = now.AddDate(0, -1, 0)
	default:
		return nil, fmt.Errorf("unknown popularity window %q", window)
	}
	return s.PopularSince(ctx, since)
}

func (s *AnimalServiceImpl) PopularSince(ctx context.Context, since time.Time) (*domain.Animal, error) {
	animal, err := s.animals.MostCommentedSince(ctx, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to find popular animal: %w", err)
	}
	return animal, nil
}

// Create stores a new animal with the default photo.
func (s *AnimalServiceImpl) Create(ctx context.Context, in *domain.Animal) (*domain.Animal, error) {
	now := s.now()
	animal := &domain.Animal{
		ID:        uuid.New(),
		Name:      in.Name,
		Species:   in.Species,
		BirthDate: in.BirthDate,
		Trivia:    in.Trivia,
		Sex:       in.Sex,
		SectionID: in.SectionID,
		PhotoPath: s.photos.DefaultPath,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := animal.Validate(domain.NewDate(now)); err != nil {
		return nil, err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.animals.WithTx(tx)
		if err := s.checkName(ctx, txStore, animal); err != nil {
			return err
		}
		return txStore.Create(ctx, animal)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("animal created",
		slog.String("animal_id", animal.ID.String()),
		slog.String("section_id", animal.SectionID.String()))
	return animal, nil
}

// Update copies the payload onto the stored animal, section included.
func (s *AnimalServiceImpl) Update(ctx context.Context, in *domain.Animal) (*domain.Animal, error) {
	now := s.now()
	var updated *domain.Animal
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.animals.WithTx(tx)

		animal, err := txStore.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		animal.ApplyUpdate(in)
		animal.UpdatedAt = now.UTC()
		if err := animal.Validate(domain.NewDate(now)); err != nil {
			return err
		}
		if err := s.checkName(ctx, txStore, animal); err != nil {
			return err
		}
		if err := txStore.Update(ctx, animal); err != nil {
			return err
		}
		updated = animal
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	return updated, nil
}

// UpdatePhoto stores the new image, then drops the previous one.
func (s *AnimalServiceImpl) UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error) {
	if _, err := s.animals.GetByID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to retrieve animal: %w", err)
	}

	path, err := s.photos.save(ctx, upload)
	if err != nil {
		return "", err
	}

	var old string
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.animals.WithTx(tx)
		animal, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		old = animal.PhotoPath
		animal.PhotoPath = path
		animal.UpdatedAt = s.now().UTC()
		return txStore.Update(ctx, animal)
	})
	if err != nil {
		s.photos.discard(ctx, path)
		return "", fmt.Errorf("failed to update animal photo: %w", err)
	}

	s.photos.discard(ctx, old)
	return path, nil
}

// Delete removes an animal, its comments and its photo.
func (s *AnimalServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.Animal, error) {
	var deleted *domain.Animal
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.animals.WithTx(tx)
		animal, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}
		deleted = animal
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete animal: %w", err)
	}

	s.photos.discard(ctx, deleted.PhotoPath)
	logger.FromContextOrDefault(ctx, s.logger).Info("animal deleted", slog.String("animal_id", id.String()))
	return deleted, nil
}

func (s *AnimalServiceImpl) checkName(ctx context.Context, animals store.AnimalStore, animal *domain.Animal) error {
	other, err := animals.GetByName(ctx, animal.Name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != animal.ID:
		return store.ErrNameExists
	}
	return nil
}
