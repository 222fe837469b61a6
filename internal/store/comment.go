package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// List returns every comment, newest first.
	List(ctx context.Context) ([]domain.Comment, error)

	// ListByAnimal returns the comments on one animal, newest first.
	ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]domain.Comment, error)

	// GetByID returns ErrCommentNotFound when the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// ExistsForDay reports whether userID already commented animalID on day.
	ExistsForDay(ctx context.Context, userID, animalID uuid.UUID, day domain.Date) (bool, error)

	// Create returns ErrCommentForTheDay when the daily limit is hit at the
	// storage level and ErrInvalidReference when the animal or user is gone.
	Create(ctx context.Context, comment *domain.Comment) error

	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) CommentStore
}
