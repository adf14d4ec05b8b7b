package models

import "time"

// Room represents a rentable room within a boarding house.
type Room struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	BoardingID    uint      `json:"boardingId" gorm:"column:boarding_id" validate:"required"`
	Name          string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Capacity      int       `json:"capacity" validate:"required,gt=0"`
	PricePerMonth float64   `json:"pricePerMonth" gorm:"column:price_per_month" validate:"required,gt=0"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
