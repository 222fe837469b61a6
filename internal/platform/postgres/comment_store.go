package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
	"github.com/proyectozoo/zoo-api/internal/store"
)

const commentColumns = `id, animal_id, user_id, text, created_on, created_at`

// PostgresCommentStore implements store.CommentStore.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a comment store over db.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

// WithTx implements store.CommentStore.WithTx
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{db: tx, logger: s.logger}
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.AnimalID, &c.UserID, &c.Text, &c.CreatedOn, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresCommentStore) query(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query comments",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, MapError(err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return comments, nil
}

// List implements store.CommentStore.List
func (s *PostgresCommentStore) List(ctx context.Context) ([]domain.Comment, error) {
	return s.query(ctx, `SELECT `+commentColumns+` FROM comments ORDER BY created_at DESC`)
}

// ListByAnimal implements store.CommentStore.ListByAnimal
func (s *PostgresCommentStore) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]domain.Comment, error) {
	return s.query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE animal_id = $1 ORDER BY created_at DESC`, animalID)
}

// GetByID implements store.CommentStore.GetByID
func (s *PostgresCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	c, err := scanComment(s.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCommentNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get comment",
			slog.String("comment_id", id.String()), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return c, nil
}

// ExistsForDay implements store.CommentStore.ExistsForDay
func (s *PostgresCommentStore) ExistsForDay(
	ctx context.Context,
	userID, animalID uuid.UUID,
	day domain.Date,
) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM comments WHERE user_id = $1 AND animal_id = $2 AND created_on = $3
		)`, userID, animalID, day).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check daily comment",
			slog.String("user_id", userID.String()),
			slog.String("animal_id", animalID.String()),
			slog.String("error", err.Error()))
		return false, MapError(err)
	}
	return exists, nil
}

// Create implements store.CommentStore.Create
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (`+commentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID, comment.AnimalID, comment.UserID, comment.Text, comment.CreatedOn, comment.CreatedAt,
	)
	if err != nil {
		log.Warn("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("animal_id", comment.AnimalID.String()),
			slog.String("user_id", comment.UserID.String()))
		return MapError(err)
	}

	log.Info("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("animal_id", comment.AnimalID.String()))
	return nil
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCommentNotFound)
}
