package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
)

// SectionStore defines the interface for section data persistence.
type SectionStore interface {
	List(ctx context.Context) ([]domain.Section, error)

	// Names returns every section name in alphabetical order.
	Names(ctx context.Context) ([]string, error)

	// GetByID returns ErrSectionNotFound when the section does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error)

	// GetByName matches the name exactly (case-sensitive).
	GetByName(ctx context.Context, name string) (*domain.Section, error)

	Create(ctx context.Context, section *domain.Section) error

	Update(ctx context.Context, section *domain.Section) error

	// Delete returns ErrInvalidReference while animals or events still point at the section.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) SectionStore
}
