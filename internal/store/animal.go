package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
)

// AnimalStore defines the interface for animal data persistence.
type AnimalStore interface {
	List(ctx context.Context) ([]domain.Animal, error)

	// ListBySection returns the animals living in a section.
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Animal, error)

	// GetByID returns ErrAnimalNotFound when the animal does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Animal, error)

	// GetByName matches the name exactly (case-sensitive).
	GetByName(ctx context.Context, name string) (*domain.Animal, error)

	// MostCommentedSince returns the animal with the most comments created at
	// or after since. Ties are broken by name. Returns ErrAnimalNotFound when
	// no animal has been commented in the window.
	MostCommentedSince(ctx context.Context, since time.Time) (*domain.Animal, error)

	// Create returns ErrNameExists on a duplicate name and ErrInvalidReference
	// when the section does not exist.
	Create(ctx context.Context, animal *domain.Animal) error

	Update(ctx context.Context, animal *domain.Animal) error

	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) AnimalStore
}
