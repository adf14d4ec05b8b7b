package services

import (
	"bodima/internal/models"
	"bodima/internal/repositories"
)

// RoomService handles business logic for room listings.
type RoomService struct {
	repo         repositories.RoomRepository
	boardingRepo repositories.BoardingRepository
}

// NewRoomService creates a new RoomService.
func NewRoomService(repo repositories.RoomRepository, boardingRepo repositories.BoardingRepository) *RoomService {
	return &RoomService{
		repo:         repo,
		boardingRepo: boardingRepo,
	}
}

// GetAllRooms retrieves all rooms.
func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	return s.repo.GetAll()
}

// GetRoomsByBoarding retrieves the rooms of a boarding house.
func (s *RoomService) GetRoomsByBoarding(boardingID uint) ([]models.Room, error) {
	return s.repo.GetByBoarding(boardingID)
}

// GetRoomByID retrieves a single room by its ID.
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	return s.repo.GetByID(id)
}

// CreateRoom creates a new room after checking the boarding house exists.
func (s *RoomService) CreateRoom(room *models.Room) error {
	if _, err := s.boardingRepo.GetByID(room.BoardingID); err != nil {
		return err
	}
	return s.repo.Create(room)
}

// UpdateRoom updates an existing room.
func (s *RoomService) UpdateRoom(room *models.Room) error {
	if _, err := s.repo.GetByID(room.ID); err != nil {
		return err
	}
	return s.repo.Update(room)
}

// DeleteRoom deletes a room by its ID.
func (s *RoomService) DeleteRoom(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
