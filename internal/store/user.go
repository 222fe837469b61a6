package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List returns every user ordered by name.
	List(ctx context.Context) ([]domain.User, error)

	// Create saves a new user. The caller must have hashed the password.
	// Returns ErrEmailExists or ErrNameExists on unique violations.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by exact email.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByName retrieves a user by exact display name.
	// Returns ErrUserNotFound if the user does not exist.
	GetByName(ctx context.Context, name string) (*domain.User, error)

	// Update persists name, email, password hash, photo and role.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by ID. Their comments go with them.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to tx.
	WithTx(tx *sql.Tx) UserStore
}
