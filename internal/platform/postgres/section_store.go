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

const sectionColumns = `id, name, description, photo_path, created_at, updated_at`

// PostgresSectionStore implements store.SectionStore.
type PostgresSectionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSectionStore creates a section store over db.
func NewPostgresSectionStore(db store.DBTX, logger *slog.Logger) *PostgresSectionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSectionStore{
		db:     db,
		logger: logger.With(slog.String("component", "section_store")),
	}
}

var _ store.SectionStore = (*PostgresSectionStore)(nil)

// WithTx implements store.SectionStore.WithTx
func (s *PostgresSectionStore) WithTx(tx *sql.Tx) store.SectionStore {
	return &PostgresSectionStore{db: tx, logger: s.logger}
}

func scanSection(row rowScanner) (*domain.Section, error) {
	var sec domain.Section
	if err := row.Scan(&sec.ID, &sec.Name, &sec.Description, &sec.PhotoPath, &sec.CreatedAt, &sec.UpdatedAt); err != nil {
		return nil, err
	}
	return &sec, nil
}

// List implements store.SectionStore.List
func (s *PostgresSectionStore) List(ctx context.Context) ([]domain.Section, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+sectionColumns+` FROM sections ORDER BY name`)
	if err != nil {
		log.Error("failed to list sections", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	sections := make([]domain.Section, 0)
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, MapError(err)
		}
		sections = append(sections, *sec)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return sections, nil
}

// Names implements store.SectionStore.Names
func (s *PostgresSectionStore) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM sections ORDER BY name`)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list section names",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, MapError(err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return names, nil
}

func (s *PostgresSectionStore) getOne(ctx context.Context, where string, arg any) (*domain.Section, error) {
	sec, err := scanSection(s.db.QueryRowContext(ctx,
		`SELECT `+sectionColumns+` FROM sections WHERE `+where+` = $1`, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSectionNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get section",
			slog.String("by", where), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return sec, nil
}

// GetByID implements store.SectionStore.GetByID
func (s *PostgresSectionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	return s.getOne(ctx, "id", id)
}

// GetByName implements store.SectionStore.GetByName
func (s *PostgresSectionStore) GetByName(ctx context.Context, name string) (*domain.Section, error) {
	return s.getOne(ctx, "name", name)
}

// Create implements store.SectionStore.Create
func (s *PostgresSectionStore) Create(ctx context.Context, section *domain.Section) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sections (`+sectionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		section.ID, section.Name, section.Description, section.PhotoPath, section.CreatedAt, section.UpdatedAt,
	)
	if err != nil {
		log.Warn("failed to create section",
			slog.String("error", err.Error()),
			slog.String("section_id", section.ID.String()))
		return MapError(err)
	}

	log.Info("section created", slog.String("section_id", section.ID.String()))
	return nil
}

// Update implements store.SectionStore.Update
func (s *PostgresSectionStore) Update(ctx context.Context, section *domain.Section) error {
	section.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE sections SET name = $1, description = $2, photo_path = $3, updated_at = $4
		WHERE id = $5`,
		section.Name, section.Description, section.PhotoPath, section.UpdatedAt, section.ID,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to update section",
			slog.String("error", err.Error()),
			slog.String("section_id", section.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrSectionNotFound)
}

// Delete implements store.SectionStore.Delete
func (s *PostgresSectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to delete section",
			slog.String("error", err.Error()),
			slog.String("section_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrSectionNotFound)
}
