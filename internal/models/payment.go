package models

import "time"

// Payment represents a recorded payment against a booking. Gateway
// integration is out of scope; these are bookkeeping records only.
type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Reference string    `json:"reference" gorm:"uniqueIndex;type:varchar(36)"`
	BookingID uint      `json:"bookingId" gorm:"column:booking_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Method    string    `json:"method" gorm:"type:varchar(30)" validate:"required,max=30"`
	Status    string    `json:"status" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
