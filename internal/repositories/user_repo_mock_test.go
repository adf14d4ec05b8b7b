package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodima/internal/apperrors"
	"bodima/internal/models"
	"bodima/internal/repositories"
)

func TestMockUserRepository_AssignsAscendingIDs(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	first := &models.User{Name: "A", Email: "a@x.com"}
	second := &models.User{Name: "B", Email: "b@x.com"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	users, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, uint(1), users[0].ID)
	assert.Equal(t, uint(2), users[1].ID)
}

func TestMockUserRepository_Lookups(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	require.NoError(t, repo.Create(&models.User{Name: "A", Email: "a@x.com"}))

	byEmail, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", byEmail.Name)

	_, err = repo.GetByEmail("ghost@x.com")
	assert.True(t, apperrors.IsNotFound(err))

	byID, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestMockUserRepository_UpdateAndDelete(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	user := &models.User{Name: "A", Email: "a@x.com"}
	require.NoError(t, repo.Create(user))

	user.Name = "B"
	require.NoError(t, repo.Update(user))
	updated, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Name)

	assert.True(t, apperrors.IsNotFound(repo.Update(&models.User{ID: 99})))
	assert.True(t, apperrors.IsNotFound(repo.Delete(99)))

	require.NoError(t, repo.Delete(user.ID))
	_, err = repo.GetByID(user.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
