package models

import "time"

// University represents a university that boarding houses are listed near.
type University struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(150)" validate:"required,min=2,max=150"`
	City      string    `json:"city" gorm:"type:varchar(100)" validate:"required,max=100"`
	Address   string    `json:"address" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
