package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bodima/internal/apperrors"
	"bodima/internal/models"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{
		db: db,
	}
}

// GetAll retrieves all payments ordered by id ascending.
func (r *GORMPaymentRepository) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Order("id asc").Find(&payments).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list payments", err)
	}
	return payments, nil
}

// GetByBooking retrieves the payments recorded against a booking.
func (r *GORMPaymentRepository) GetByBooking(bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Order("id asc").Find(&payments, "booking_id = ?", bookingID).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list payments by booking", err)
	}
	return payments, nil
}

// GetByID retrieves a single payment by its ID.
func (r *GORMPaymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Payment not found!")
		}
		return nil, apperrors.NewInternal("failed to get payment by id", err)
	}
	return &payment, nil
}

// Create inserts a new payment record.
func (r *GORMPaymentRepository) Create(payment *models.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return apperrors.NewInternal("failed to create payment", err)
	}
	return nil
}
