package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
)

// EventStore defines the interface for event data persistence.
type EventStore interface {
	// List returns every event ordered by date.
	List(ctx context.Context) ([]domain.Event, error)

	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Event, error)

	// GetByID returns ErrEventNotFound when the event does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)

	// GetByName matches the name exactly (case-sensitive).
	GetByName(ctx context.Context, name string) (*domain.Event, error)

	Create(ctx context.Context, event *domain.Event) error

	Update(ctx context.Context, event *domain.Event) error

	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) EventStore
}
