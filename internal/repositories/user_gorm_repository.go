package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bodima/internal/apperrors"
	"bodima/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. The store assigns the numeric ID.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperrors.NewInternal("failed to create user", err)
	}
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User not found!")
		}
		return nil, apperrors.NewInternal("failed to get user by email", err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User not found!")
		}
		return nil, apperrors.NewInternal("failed to get user by id", err)
	}
	return &user, nil
}

// GetAll retrieves all users ordered by id ascending.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list users", err)
	}
	return users, nil
}

// Update persists changes to an existing user.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user)
	if res.Error != nil {
		return apperrors.NewInternal("failed to update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("User not found!")
	}
	return nil
}

// Delete removes a user permanently.
func (r *GORMUserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal("failed to delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("User not found!")
	}
	return nil
}
