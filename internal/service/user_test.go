package service

import (
	"context"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/repository"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestUserService(t *testing.T) UserService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	return NewUserService(repository.NewUserRepository(db))
}

func TestRegisterIsIdempotent(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	user, created, err := svc.Register(ctx, "Karim", "karim@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, user)

	// re-registering the same email is a no-op, not an error
	again, created, err := svc.Register(ctx, "Karim Again", "karim@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "Karim", again.Name)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestIsAdmin(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "Karim", "karim@example.com")
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(ctx, "karim@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, svc.PromoteToAdmin(ctx, user.ID))

	isAdmin, err = svc.IsAdmin(ctx, "karim@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestIsAdminUnknownEmail(t *testing.T) {
	svc := newTestUserService(t)

	isAdmin, err := svc.IsAdmin(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestPromoteUnknownUser(t *testing.T) {
	svc := newTestUserService(t)

	err := svc.PromoteToAdmin(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "Karim", "karim@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))
	assert.ErrorIs(t, svc.Delete(ctx, user.ID), ErrNotFound)
}
