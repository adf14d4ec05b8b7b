package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bodima/internal/apperrors"
	"bodima/internal/models"
)

// GORMRoomRepository is a GORM implementation of RoomRepository.
type GORMRoomRepository struct {
	db *gorm.DB
}

// NewGORMRoomRepository creates a new instance of GORMRoomRepository.
func NewGORMRoomRepository(db *gorm.DB) *GORMRoomRepository {
	return &GORMRoomRepository{
		db: db,
	}
}

// GetAll retrieves all rooms ordered by id ascending.
func (r *GORMRoomRepository) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.Order("id asc").Find(&rooms).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list rooms", err)
	}
	return rooms, nil
}

// GetByBoarding retrieves the rooms belonging to a boarding house.
func (r *GORMRoomRepository) GetByBoarding(boardingID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.Order("id asc").Find(&rooms, "boarding_id = ?", boardingID).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list rooms by boarding", err)
	}
	return rooms, nil
}

// GetByID retrieves a single room by its ID.
func (r *GORMRoomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Room not found!")
		}
		return nil, apperrors.NewInternal("failed to get room by id", err)
	}
	return &room, nil
}

// Create inserts a new room.
func (r *GORMRoomRepository) Create(room *models.Room) error {
	if err := r.db.Create(room).Error; err != nil {
		return apperrors.NewInternal("failed to create room", err)
	}
	return nil
}

// Update persists changes to an existing room.
func (r *GORMRoomRepository) Update(room *models.Room) error {
	res := r.db.Save(room)
	if res.Error != nil {
		return apperrors.NewInternal("failed to update room", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Room not found!")
	}
	return nil
}

// Delete removes a room permanently.
func (r *GORMRoomRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Room{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal("failed to delete room", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Room not found!")
	}
	return nil
}
