package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
	"github.com/proyectozoo/zoo-api/internal/store"
)

const eventColumns = `id, name, date, capacity, section_id, photo_path, created_at, updated_at`

// PostgresEventStore implements store.EventStore.
type PostgresEventStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEventStore creates an event store over db.
func NewPostgresEventStore(db store.DBTX, logger *slog.Logger) *PostgresEventStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresEventStore{
		db:     db,
		logger: logger.With(slog.String("component", "event_store")),
	}
}

var _ store.EventStore = (*PostgresEventStore)(nil)

// WithTx implements store.EventStore.WithTx
func (s *PostgresEventStore) WithTx(tx *sql.Tx) store.EventStore {
	return &PostgresEventStore{db: tx, logger: s.logger}
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(&e.ID, &e.Name, &e.Date, &e.Capacity, &e.SectionID, &e.PhotoPath,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *PostgresEventStore) query(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query events",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, MapError(err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return events, nil
}

// List implements store.EventStore.List
func (s *PostgresEventStore) List(ctx context.Context) ([]domain.Event, error) {
	return s.query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date, name`)
}

// ListBySection implements store.EventStore.ListBySection
func (s *PostgresEventStore) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Event, error) {
	return s.query(ctx, `SELECT `+eventColumns+` FROM events WHERE section_id = $1 ORDER BY date, name`, sectionID)
}

func (s *PostgresEventStore) getOne(ctx context.Context, where string, arg any) (*domain.Event, error) {
	e, err := scanEvent(s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE `+where+` = $1`, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEventNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get event",
			slog.String("by", where), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return e, nil
}

// GetByID implements store.EventStore.GetByID
func (s *PostgresEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.getOne(ctx, "id", id)
}

// GetByName implements store.EventStore.GetByName
func (s *PostgresEventStore) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	return s.getOne(ctx, "name", name)
}

// Create implements store.EventStore.Create
func (s *PostgresEventStore) Create(ctx context.Context, event *domain.Event) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ID, event.Name, event.Date, event.Capacity, event.SectionID, event.PhotoPath,
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		log.Warn("failed to create event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return MapError(err)
	}

	log.Info("event created", slog.String("event_id", event.ID.String()))
	return nil
}

// Update implements store.EventStore.Update
func (s *PostgresEventStore) Update(ctx context.Context, event *domain.Event) error {
	event.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE events
		SET name = $1, date = $2, capacity = $3, section_id = $4, photo_path = $5, updated_at = $6
		WHERE id = $7`,
		event.Name, event.Date, event.Capacity, event.SectionID, event.PhotoPath, event.UpdatedAt, event.ID,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to update event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrEventNotFound)
}

// Delete implements store.EventStore.Delete
func (s *PostgresEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete event",
			slog.String("error", err.Error()),
			slog.String("event_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrEventNotFound)
}
