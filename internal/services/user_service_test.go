package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bodima/internal/apperrors"
	"bodima/internal/models"
	"bodima/internal/services"
)

func TestUserService_UpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	stored := &models.User{
		ID:            1,
		Name:          "A",
		ContactNumber: "555",
		Email:         "a@x.com",
		Password:      "$2a$10$somestoredhash",
	}
	mockRepo.On("GetByID", uint(1)).Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		updated := args.Get(0).(*models.User)
		assert.Equal(t, "B", updated.Name)
		assert.Equal(t, "666", updated.ContactNumber)
		assert.Equal(t, "b@x.com", updated.Email)
		// The password hash is untouched by an update.
		assert.Equal(t, "$2a$10$somestoredhash", updated.Password)
	}).Return(nil).Once()

	err := service.UpdateUser(1, services.UserUpdateInput{
		Name:          "B",
		ContactNumber: "666",
		Email:         "b@x.com",
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, apperrors.NewNotFound("User not found!")).Once()

	err := service.UpdateUser(99, services.UserUpdateInput{Name: "B"})
	assert.True(t, apperrors.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, apperrors.NewNotFound("User not found!")).Once()

	err := service.DeleteUser(99)
	assert.True(t, apperrors.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
