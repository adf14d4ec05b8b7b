package repositories

import "bodima/internal/models"

// UniversityRepository defines the interface for university data access.
type UniversityRepository interface {
	GetAll() ([]models.University, error)
	GetByID(id uint) (*models.University, error)
	Create(university *models.University) error
	Update(university *models.University) error
	Delete(id uint) error
}
