package repositories

import "bodima/internal/models"

// BoardingRepository defines the interface for boarding house data access.
type BoardingRepository interface {
	GetAll() ([]models.Boarding, error)
	GetByUniversity(universityID uint) ([]models.Boarding, error)
	GetByID(id uint) (*models.Boarding, error)
	Create(boarding *models.Boarding) error
	Update(boarding *models.Boarding) error
	Delete(id uint) error
}
