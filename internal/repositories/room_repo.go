package repositories

import "bodima/internal/models"

// RoomRepository defines the interface for room data access.
type RoomRepository interface {
	GetAll() ([]models.Room, error)
	GetByBoarding(boardingID uint) ([]models.Room, error)
	GetByID(id uint) (*models.Room, error)
	Create(room *models.Room) error
	Update(room *models.Room) error
	Delete(id uint) error
}
