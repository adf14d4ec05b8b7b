package repositories

import "bodima/internal/models"

// PaymentRepository defines the interface for payment record data access.
type PaymentRepository interface {
	GetAll() ([]models.Payment, error)
	GetByBooking(bookingID uint) ([]models.Payment, error)
	GetByID(id uint) (*models.Payment, error)
	Create(payment *models.Payment) error
}
