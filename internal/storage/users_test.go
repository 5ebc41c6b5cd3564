package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/logitrack/internal/models"
)

func makeUser(openID, email string) *models.User {
	return &models.User{
		OpenID:       openID,
		Name:         "Alice",
		Email:        email,
		LoginMethod:  "password",
		Role:         models.RoleUser,
		LastSignedIn: time.Now(),
	}
}

func TestUserLookupByEmailAndOpenID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := makeUser("local:alice", "alice@example.com")
	require.NoError(t, store.CreateUser(ctx, user))

	byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byOpenID, err := store.GetUserByOpenID(ctx, "local:alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byOpenID.ID)

	_, err = store.GetUserByOpenID(ctx, "local:nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserEmailIsUnique(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, makeUser("local:first", "dup@example.com")))

	// Email is the credential key; the unique index is the safety net when
	// two registrations race past the handler's existence check.
	err := store.CreateUser(ctx, makeUser("local:second", "dup@example.com"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserOpenIDIsUnique(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, makeUser("local:same", "a@example.com")))
	err := store.CreateUser(ctx, makeUser("local:same", "b@example.com"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserRoleAndSignInUpdates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := makeUser("local:dave", "dave@example.com")
	require.NoError(t, store.CreateUser(ctx, user))

	require.NoError(t, store.UpdateUserRole(ctx, user.ID, models.RoleDriver))

	before := user.LastSignedIn
	require.NoError(t, store.TouchLastSignedIn(ctx, user.ID))

	got, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, got.Role)
	assert.True(t, got.LastSignedIn.After(before) || got.LastSignedIn.Equal(before))
}
