package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bodima/internal/apperrors"
	"bodima/internal/models"
)

// GORMBoardingRepository is a GORM implementation of BoardingRepository.
type GORMBoardingRepository struct {
	db *gorm.DB
}

// NewGORMBoardingRepository creates a new instance of GORMBoardingRepository.
func NewGORMBoardingRepository(db *gorm.DB) *GORMBoardingRepository {
	return &GORMBoardingRepository{
		db: db,
	}
}

// GetAll retrieves all boarding houses ordered by id ascending.
func (r *GORMBoardingRepository) GetAll() ([]models.Boarding, error) {
	var boardings []models.Boarding
	if err := r.db.Order("id asc").Find(&boardings).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list boardings", err)
	}
	return boardings, nil
}

// GetByUniversity retrieves the boarding houses listed near a university.
func (r *GORMBoardingRepository) GetByUniversity(universityID uint) ([]models.Boarding, error) {
	var boardings []models.Boarding
	if err := r.db.Order("id asc").Find(&boardings, "university_id = ?", universityID).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list boardings by university", err)
	}
	return boardings, nil
}

// GetByID retrieves a single boarding house by its ID.
func (r *GORMBoardingRepository) GetByID(id uint) (*models.Boarding, error) {
	var boarding models.Boarding
	if err := r.db.First(&boarding, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Boarding not found!")
		}
		return nil, apperrors.NewInternal("failed to get boarding by id", err)
	}
	return &boarding, nil
}

// Create inserts a new boarding house.
func (r *GORMBoardingRepository) Create(boarding *models.Boarding) error {
	if err := r.db.Create(boarding).Error; err != nil {
		return apperrors.NewInternal("failed to create boarding", err)
	}
	return nil
}

// Update persists changes to an existing boarding house.
func (r *GORMBoardingRepository) Update(boarding *models.Boarding) error {
	res := r.db.Save(boarding)
	if res.Error != nil {
		return apperrors.NewInternal("failed to update boarding", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Boarding not found!")
	}
	return nil
}

// Delete removes a boarding house permanently.
func (r *GORMBoardingRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Boarding{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal("failed to delete boarding", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Boarding not found!")
	}
	return nil
}
