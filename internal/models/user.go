package models

import "time"

// User represents a registered user of the platform.
// IDs are assigned by the store on insert. Deletion is permanent, so no
// soft-delete column is carried.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(100)"`
	ContactNumber string    `json:"contactNumber" gorm:"column:contact_number;type:varchar(20)"`
	Email         string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password      string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
