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

const animalColumns = `id, name, species, birth_date, trivia, sex, photo_path, section_id, created_at, updated_at`

// PostgresAnimalStore implements store.AnimalStore.
type PostgresAnimalStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAnimalStore creates an animal store over db.
func NewPostgresAnimalStore(db store.DBTX, logger *slog.Logger) *PostgresAnimalStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAnimalStore{
		db:     db,
		logger: logger.With(slog.String("component", "animal_store")),
	}
}

var _ store.AnimalStore = (*PostgresAnimalStore)(nil)

// WithTx implements store.AnimalStore.WithTx
func (s *PostgresAnimalStore) WithTx(tx *sql.Tx) store.AnimalStore {
	return &PostgresAnimalStore{db: tx, logger: s.logger}
}

func scanAnimal(row rowScanner) (*domain.Animal, error) {
	var a domain.Animal
	if err := row.Scan(&a.ID, &a.Name, &a.Species, &a.BirthDate, &a.Trivia, &a.Sex, &a.PhotoPath,
		&a.SectionID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *PostgresAnimalStore) query(ctx context.Context, op, query string, args ...any) ([]domain.Animal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query animals",
			slog.String("operation", op), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	animals := make([]domain.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, MapError(err)
		}
		animals = append(animals, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return animals, nil
}

// List implements store.AnimalStore.List
func (s *PostgresAnimalStore) List(ctx context.Context) ([]domain.Animal, error) {
	return s.query(ctx, "list", `SELECT `+animalColumns+` FROM animals ORDER BY name`)
}

// ListBySection implements store.AnimalStore.ListBySection
func (s *PostgresAnimalStore) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Animal, error) {
	return s.query(ctx, "list_by_section",
		`SELECT `+animalColumns+` FROM animals WHERE section_id = $1 ORDER BY name`, sectionID)
}

func (s *PostgresAnimalStore) getOne(ctx context.Context, op, query string, args ...any) (*domain.Animal, error) {
	a, err := scanAnimal(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAnimalNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get animal",
			slog.String("operation", op), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return a, nil
}

// GetByID implements store.AnimalStore.GetByID
func (s *PostgresAnimalStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Animal, error) {
	return s.getOne(ctx, "get_by_id", `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
}

// GetByName implements store.AnimalStore.GetByName
func (s *PostgresAnimalStore) GetByName(ctx context.Context, name string) (*domain.Animal, error) {
	return s.getOne(ctx, "get_by_name", `SELECT `+animalColumns+` FROM animals WHERE name = $1`, name)
}

// MostCommentedSince implements store.AnimalStore.MostCommentedSince
func (s *PostgresAnimalStore) MostCommentedSince(ctx context.Context, since time.Time) (*domain.Animal, error) {
	return s.getOne(ctx, "most_commented", `
		SELECT a.id, a.name, a.species, a.birth_date, a.trivia, a.sex, a.photo_path, a.section_id,
		       a.created_at, a.updated_at
		FROM animals a
		JOIN comments c ON c.animal_id = a.id
		WHERE c.created_at >= $1
		GROUP BY a.id
		ORDER BY count(c.id) DESC, a.name
		LIMIT 1`, since)
}

// Create implements store.AnimalStore.Create
func (s *PostgresAnimalStore) Create(ctx context.Context, animal *domain.Animal) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		animal.ID, animal.Name, animal.Species, animal.BirthDate, animal.Trivia, animal.Sex,
		animal.PhotoPath, animal.SectionID, animal.CreatedAt, animal.UpdatedAt,
	)
	if err != nil {
		log.Warn("failed to create animal",
			slog.String("error", err.Error()),
			slog.String("animal_id", animal.ID.String()))
		return MapError(err)
	}

	log.Info("animal created",
		slog.String("animal_id", animal.ID.String()),
		slog.String("section_id", animal.SectionID.String()))
	return nil
}

// Update implements store.AnimalStore.Update
func (s *PostgresAnimalStore) Update(ctx context.Context, animal *domain.Animal) error {
	animal.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE animals
		SET name = $1, species = $2, birth_date = $3, trivia = $4, sex = $5, photo_path = $6,
		    section_id = $7, updated_at = $8
		WHERE id = $9`,
		animal.Name, animal.Species, animal.BirthDate, animal.Trivia, animal.Sex, animal.PhotoPath,
		animal.SectionID, animal.UpdatedAt, animal.ID,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to update animal",
			slog.String("error", err.Error()),
			slog.String("animal_id", animal.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrAnimalNotFound)
}

// Delete implements store.AnimalStore.Delete
func (s *PostgresAnimalStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete animal",
			slog.String("error", err.Error()),
			slog.String("animal_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrAnimalNotFound)
}
