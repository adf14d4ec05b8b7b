package repositories

import "bodima/internal/models"

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	GetAll() ([]models.Booking, error)
	GetByUser(userID uint) ([]models.Booking, error)
	GetByID(id uint) (*models.Booking, error)
	Create(booking *models.Booking) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}
