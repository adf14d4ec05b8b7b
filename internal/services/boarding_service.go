package services

import (
	"bodima/internal/models"
	"bodima/internal/repositories"
)

// BoardingService handles business logic for boarding house listings.
type BoardingService struct {
	repo           repositories.BoardingRepository
	universityRepo repositories.UniversityRepository
}

// NewBoardingService creates a new BoardingService.
func NewBoardingService(repo repositories.BoardingRepository, universityRepo repositories.UniversityRepository) *BoardingService {
	return &BoardingService{
		repo:           repo,
		universityRepo: universityRepo,
	}
}

// GetAllBoardings retrieves all boarding houses.
func (s *BoardingService) GetAllBoardings() ([]models.Boarding, error) {
	return s.repo.GetAll()
}

// GetBoardingsByUniversity retrieves the boarding houses near a university.
func (s *BoardingService) GetBoardingsByUniversity(universityID uint) ([]models.Boarding, error) {
	return s.repo.GetByUniversity(universityID)
}

// GetBoardingByID retrieves a single boarding house by its ID.
func (s *BoardingService) GetBoardingByID(id uint) (*models.Boarding, error) {
	return s.repo.GetByID(id)
}

// CreateBoarding creates a new boarding house listing after checking the
// referenced university exists.
func (s *BoardingService) CreateBoarding(boarding *models.Boarding) error {
	if _, err := s.universityRepo.GetByID(boarding.UniversityID); err != nil {
		return err
	}
	return s.repo.Create(boarding)
}

// UpdateBoarding updates an existing boarding house listing.
func (s *BoardingService) UpdateBoarding(boarding *models.Boarding) error {
	if _, err := s.repo.GetByID(boarding.ID); err != nil {
		return err
	}
	return s.repo.Update(boarding)
}

// DeleteBoarding deletes a boarding house listing by its ID.
func (s *BoardingService) DeleteBoarding(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
