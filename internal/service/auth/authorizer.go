package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
)

// UserLookup resolves a user by ID. store.UserStore satisfies it.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Authorizer answers whether a token bearer is authenticated and whether they
// are an administrator. The role is read from storage on every call, so a role
// change applies to the next request made with an already issued token.
type Authorizer struct {
	tokens JWTService
	users  UserLookup
	logger *slog.Logger
}

// NewAuthorizer creates an Authorizer.
func NewAuthorizer(tokens JWTService, users UserLookup, logger *slog.Logger) *Authorizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authorizer{
		tokens: tokens,
		users:  users,
		logger: logger.With(slog.String("component", "authorizer")),
	}
}

// Authenticate validates token and returns its claims.
func (a *Authorizer) Authenticate(ctx context.Context, token string) (*Claims, error) {
	return a.tokens.ValidateToken(ctx, token)
}

// SubjectOf returns the email carried by token.
func (a *Authorizer) SubjectOf(ctx context.Context, token string) (string, error) {
	return SubjectOf(ctx, a.tokens, token)
}

// IDOf returns the user ID carried by token.
func (a *Authorizer) IDOf(ctx context.Context, token string) (uuid.UUID, error) {
	return IDOf(ctx, a.tokens, token)
}

// IsValid reports whether token verifies and carries a non-nil user ID.
func (a *Authorizer) IsValid(ctx context.Context, token string) bool {
	id, err := a.IDOf(ctx, token)
	return err == nil && id != uuid.Nil
}

// IsAdmin reports whether token verifies and the user it names currently holds ADMIN.
func (a *Authorizer) IsAdmin(ctx context.Context, token string) bool {
	id, err := a.IDOf(ctx, token)
	if err != nil {
		return false
	}
	return a.IsAdminID(ctx, id)
}

// IsAdminID reports whether the user with id currently holds ADMIN.
// Lookup failures, including a deleted user, count as not admin.
func (a *Authorizer) IsAdminID(ctx context.Context, id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	user, err := a.users.GetByID(ctx, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, a.logger).Debug("admin lookup failed",
			slog.String("user_id", id.String()),
			slog.String("error", err.Error()))
		return false
	}
	return user.IsAdmin()
}
