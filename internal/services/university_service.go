package services

import (
	"bodima/internal/models"
	"bodima/internal/repositories"
)

// UniversityService handles business logic for university listings.
type UniversityService struct {
	repo repositories.UniversityRepository
}

// NewUniversityService creates a new UniversityService.
func NewUniversityService(repo repositories.UniversityRepository) *UniversityService {
	return &UniversityService{
		repo: repo,
	}
}

// GetAllUniversities retrieves all universities.
func (s *UniversityService) GetAllUniversities() ([]models.University, error) {
	return s.repo.GetAll()
}

// GetUniversityByID retrieves a single university by its ID.
func (s *UniversityService) GetUniversityByID(id uint) (*models.University, error) {
	return s.repo.GetByID(id)
}

// CreateUniversity creates a new university listing.
func (s *UniversityService) CreateUniversity(university *models.University) error {
	return s.repo.Create(university)
}

// UpdateUniversity updates an existing university listing.
func (s *UniversityService) UpdateUniversity(university *models.University) error {
	if _, err := s.repo.GetByID(university.ID); err != nil {
		return err
	}
	return s.repo.Update(university)
}

// DeleteUniversity deletes a university listing by its ID.
func (s *UniversityService) DeleteUniversity(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
