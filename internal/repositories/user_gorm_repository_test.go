package repositories_test

import (
	"testing"

	"urbanfabric/internal/models"
	"urbanfabric/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newUserRepo(t *testing.T) *repositories.GORMUserRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return repositories.NewGORMUserRepository(db)
}

func TestGORMUserRepository_CreateAndLookups(t *testing.T) {
	repo := newUserRepo(t)

	user := &models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
	}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID, "Create should assign an ID")

	byUsername, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestGORMUserRepository_NotFound(t *testing.T) {
	repo := newUserRepo(t)

	_, err := repo.GetByUsername("ghost")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = repo.GetByEmail("ghost@example.com")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = repo.GetByID("no-such-id")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
