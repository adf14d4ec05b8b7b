package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bodima/internal/apperrors"
	"bodima/internal/models"
)

// GORMUniversityRepository is a GORM implementation of UniversityRepository.
type GORMUniversityRepository struct {
	db *gorm.DB
}

// NewGORMUniversityRepository creates a new instance of GORMUniversityRepository.
func NewGORMUniversityRepository(db *gorm.DB) *GORMUniversityRepository {
	return &GORMUniversityRepository{
		db: db,
	}
}

// GetAll retrieves all universities ordered by id ascending.
func (r *GORMUniversityRepository) GetAll() ([]models.University, error) {
	var universities []models.University
	if err := r.db.Order("id asc").Find(&universities).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list universities", err)
	}
	return universities, nil
}

// GetByID retrieves a single university by its ID.
func (r *GORMUniversityRepository) GetByID(id uint) (*models.University, error) {
	var university models.University
	if err := r.db.First(&university, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("University not found!")
		}
		return nil, apperrors.NewInternal("failed to get university by id", err)
	}
	return &university, nil
}

// Create inserts a new university.
func (r *GORMUniversityRepository) Create(university *models.University) error {
	if err := r.db.Create(university).Error; err != nil {
		return apperrors.NewInternal("failed to create university", err)
	}
	return nil
}

// Update persists changes to an existing university.
func (r *GORMUniversityRepository) Update(university *models.University) error {
	res := r.db.Save(university)
	if res.Error != nil {
		return apperrors.NewInternal("failed to update university", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("University not found!")
	}
	return nil
}

// Delete removes a university permanently.
func (r *GORMUniversityRepository) Delete(id uint) error {
	res := r.db.Delete(&models.University{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal("failed to delete university", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("University not found!")
	}
	return nil
}
