package sqlite

import (
	"context"
	"testing"

	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepository(db)
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	user := domain.NewUser("owner@example.com", "hashed", true)
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", found.Email)
	assert.Equal(t, "hashed", found.Password)
	assert.True(t, found.Admin)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewUser("owner@example.com", "h1", false)))
	assert.Error(t, repo.Create(ctx, domain.NewUser("owner@example.com", "h2", false)))
}

func TestUserRepositoryFindUnknown(t *testing.T) {
	repo := newUserRepo(t)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorContains(t, err, "user not found")
}

func TestUserRepositoryUpdate(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	user := domain.NewUser("owner@example.com", "old-hash", false)
	require.NoError(t, repo.Create(ctx, user))

	user.Password = "new-hash"
	user.Admin = true
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.Password)
	assert.True(t, found.Admin)
}

func TestUserRepositoryUpdateUnknown(t *testing.T) {
	repo := newUserRepo(t)

	err := repo.Update(context.Background(), domain.NewUser("nobody@example.com", "h", false))
	assert.ErrorContains(t, err, "user not found")
}

func TestUserRepositoryDeleteAndList(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewUser("a@example.com", "h", false)))
	require.NoError(t, repo.Create(ctx, domain.NewUser("b@example.com", "h", true)))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@example.com", users[0].Email)

	require.NoError(t, repo.Delete(ctx, "a@example.com"))

	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	assert.ErrorContains(t, repo.Delete(ctx, "a@example.com"), "user not found")
}
