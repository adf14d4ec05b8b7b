package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bodima/internal/apperrors"
	"bodima/internal/models"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// GetAll retrieves all bookings ordered by id ascending.
func (r *GORMBookingRepository) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Order("id asc").Find(&bookings).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list bookings", err)
	}
	return bookings, nil
}

// GetByUser retrieves the bookings made by a user.
func (r *GORMBookingRepository) GetByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Order("id asc").Find(&bookings, "user_id = ?", userID).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list bookings by user", err)
	}
	return bookings, nil
}

// GetByID retrieves a single booking by its ID.
func (r *GORMBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Booking not found!")
		}
		return nil, apperrors.NewInternal("failed to get booking by id", err)
	}
	return &booking, nil
}

// Create inserts a new booking.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return apperrors.NewInternal("failed to create booking", err)
	}
	return nil
}

// UpdateStatus changes the status of an existing booking.
func (r *GORMBookingRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return apperrors.NewInternal("failed to update booking status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Booking not found!")
	}
	return nil
}

// Delete removes a booking permanently.
func (r *GORMBookingRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal("failed to delete booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Booking not found!")
	}
	return nil
}
