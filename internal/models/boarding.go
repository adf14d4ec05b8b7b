package models

import "time"

// Boarding represents a boarding house listing.
type Boarding struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(150)" validate:"required,min=2,max=150"`
	Address      string    `json:"address" gorm:"type:varchar(255)" validate:"required,max=255"`
	OwnerName    string    `json:"ownerName" gorm:"column:owner_name;type:varchar(100)" validate:"required,max=100"`
	OwnerContact string    `json:"ownerContact" gorm:"column:owner_contact;type:varchar(20)" validate:"required,max=20"`
	Description  string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	UniversityID uint      `json:"universityId" gorm:"column:university_id" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
