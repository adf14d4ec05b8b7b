package repositories

import "bodima/internal/models"

// UserRepository defines the interface for user data access.
// Implementations report a missing record with an apperrors NotFound error
// and any other storage fault as an internal error.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}
