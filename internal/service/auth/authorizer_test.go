package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUsers is a UserLookup whose roles can change between calls.
type memoryUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
	calls int
}

func (m *memoryUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

func (m *memoryUsers) setRole(id uuid.UUID, role domain.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[id]
	u.Role = role
	m.users[id] = u
}

func TestAuthorizer_IsAdminFollowsStoredRole(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens := newTestJWTService(t, testSecret, 60, &now)

	adminID := uuid.New()
	users := &memoryUsers{users: map[uuid.UUID]domain.User{
		adminID: {ID: adminID, Email: "jefa@zoo.es", Role: domain.RoleAdmin},
	}}
	authz := NewAuthorizer(tokens, users, nil)
	ctx := context.Background()

	token, err := tokens.GenerateToken(ctx, adminID, "jefa@zoo.es")
	require.NoError(t, err)

	assert.True(t, authz.IsValid(ctx, token))
	assert.True(t, authz.IsAdmin(ctx, token))

	users.setRole(adminID, domain.RoleUser)
	assert.False(t, authz.IsAdmin(ctx, token), "downgrade must apply to the next call")
	assert.True(t, authz.IsValid(ctx, token), "token itself stays valid")

	users.setRole(adminID, domain.RoleAdmin)
	assert.True(t, authz.IsAdmin(ctx, token))
	assert.Equal(t, 3, users.calls, "every admin check reads storage")
}

func TestAuthorizer_Rejections(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens := newTestJWTService(t, testSecret, 60, &now)
	users := &memoryUsers{users: map[uuid.UUID]domain.User{}}
	authz := NewAuthorizer(tokens, users, nil)
	ctx := context.Background()

	ghost, err := tokens.GenerateToken(ctx, uuid.New(), "ghost@zoo.es")
	require.NoError(t, err)

	assert.True(t, authz.IsValid(ctx, ghost))
	assert.False(t, authz.IsAdmin(ctx, ghost), "unknown user is not admin")

	assert.False(t, authz.IsValid(ctx, "garbage"))
	assert.False(t, authz.IsAdmin(ctx, "garbage"))
	assert.Equal(t, 1, users.calls, "invalid tokens never reach storage")

	assert.False(t, authz.IsAdminID(ctx, uuid.Nil))

	email, err := authz.SubjectOf(ctx, ghost)
	require.NoError(t, err)
	assert.Equal(t, "ghost@zoo.es", email)

	_, err = authz.IDOf(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
