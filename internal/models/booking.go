package models

import "time"

// Booking statuses. Transitions are last-write-wins; there is no workflow
// engine behind them.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a room reservation made by a user.
type Booking struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Reference   string    `json:"reference" gorm:"uniqueIndex;type:varchar(36)"`
	UserID      uint      `json:"userId" gorm:"column:user_id" validate:"required"`
	RoomID      uint      `json:"roomId" gorm:"column:room_id" validate:"required"`
	CheckIn     time.Time `json:"checkIn" gorm:"column:check_in" validate:"required"`
	Months      int       `json:"months" validate:"required,gt=0"`
	TotalAmount float64   `json:"totalAmount" gorm:"column:total_amount"`
	Status      string    `json:"status" gorm:"type:varchar(20)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
