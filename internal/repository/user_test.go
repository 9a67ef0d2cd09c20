package repository

import (
	"context"
	"grocery-bazaar-backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndFindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Name: "Karim", Email: "karim@example.com"}))

	user, err := repo.FindByEmail(ctx, "karim@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Karim", user.Name)
	assert.Empty(t, user.Role)
}

func TestPromoteToAdmin(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &model.User{Name: "Karim", Email: "karim@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	affected, err := repo.PromoteToAdmin(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	promoted, err := repo.FindByEmail(ctx, "karim@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, promoted.Role)
}

func TestPromoteUnknownUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	affected, err := repo.PromoteToAdmin(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestDeleteUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &model.User{Name: "Karim", Email: "karim@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	affected, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = repo.FindByEmail(ctx, "karim@example.com")
	assert.Error(t, err)
}
