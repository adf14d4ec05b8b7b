package services

import (
	"bodima/internal/models"
	"bodima/internal/repositories"
)

// UserUpdateInput carries the mutable user fields. Exactly these three are
// touched by an update; everything else is left as stored.
type UserUpdateInput struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
}

// UserService handles business logic for user records.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users ordered by id ascending.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateUser applies the supplied fields to an existing user. The existence
// check and the write are separate statements; concurrent updates to the
// same id are last-write-wins.
func (s *UserService) UpdateUser(id uint, input UserUpdateInput) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	user.Name = input.Name
	user.ContactNumber = input.ContactNumber
	user.Email = input.Email
	return s.repo.Update(user)
}

// DeleteUser removes a user permanently.
func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
