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

// EventService manages scheduled events.
type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)

	// Create requires the event date to lie in the future.
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)

	// Update keeps past dates valid so finished events stay editable.
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)

	UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Event, error)
}

// EventServiceImpl implements EventService.
type EventServiceImpl struct {
	db     store.TxBeginner
	events store.EventStore
	photos photoManager
	now    func() time.Time
	logger *slog.Logger
}

var _ EventService = (*EventServiceImpl)(nil)

// NewEventService creates an EventService.
func NewEventService(
	db store.TxBeginner,
	events store.EventStore,
	photos Photos,
	log *slog.Logger,
	opts ...Option,
) *EventServiceImpl {
	o := buildOptions(opts)
	log = log.With(slog.String("component", "event_service"))
	return &EventServiceImpl{
		db:     db,
		events: events,
		photos: newPhotoManager(photos, "event", o.metrics, log),
		now:    o.now,
		logger: log,
	}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventServiceImpl) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Event, error) {
	events, err := s.events.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events of section: %w", err)
	}
	return events, nil
}

func (s *EventServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve event: %w", err)
	}
	return event, nil
}

func (s *EventServiceImpl) Create(ctx context.Context, in *domain.Event) (*domain.Event, error) {
	now := s.now()
	event := &domain.Event{
		ID:        uuid.New(),
		Name:      in.Name,
		Date:      in.Date.UTC(),
		Capacity:  in.Capacity,
		SectionID: in.SectionID,
		PhotoPath: s.photos.DefaultPath,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := event.ValidateNew(now); err != nil {
		return nil, err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.events.WithTx(tx)
		if err := s.checkName(ctx, txStore, event); err != nil {
			return err
		}
		return txStore.Create(ctx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("event created",
		slog.String("event_id", event.ID.String()),
		slog.Time("date", event.Date))
	return event, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, in *domain.Event) (*domain.Event, error) {
	var updated *domain.Event
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.events.WithTx(tx)

		event, err := txStore.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		event.ApplyUpdate(in)
		event.Date = event.Date.UTC()
		event.UpdatedAt = s.now().UTC()
		if err := event.Validate(); err != nil {
			return err
		}
		if err := s.checkName(ctx, txStore, event); err != nil {
			return err
		}
		if err := txStore.Update(ctx, event); err != nil {
			return err
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

func (s *EventServiceImpl) UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error) {
	if _, err := s.events.GetByID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to retrieve event: %w", err)
	}

	path, err := s.photos.save(ctx, upload)
	if err != nil {
		return "", err
	}

	var old string
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.events.WithTx(tx)
		event, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		old = event.PhotoPath
		event.PhotoPath = path
		event.UpdatedAt = s.now().UTC()
		return txStore.Update(ctx, event)
	})
	if err != nil {
		s.photos.discard(ctx, path)
		return "", fmt.Errorf("failed to update event photo: %w", err)
	}

	s.photos.discard(ctx, old)
	return path, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var deleted *domain.Event
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.events.WithTx(tx)
		event, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}
		deleted = event
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}

	s.photos.discard(ctx, deleted.PhotoPath)
	return deleted, nil
}

func (s *EventServiceImpl) checkName(ctx context.Context, events store.EventStore, event *domain.Event) error {
	other, err := events.GetByName(ctx, event.Name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != event.ID:
		return store.ErrNameExists
	}
	return nil
}
