package models

import "time"

type Court struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OwnerID      string    `gorm:"not null;index" json:"owner_id"`
	Facility     string    `gorm:"not null" json:"facility"`
	Name         string    `gorm:"not null" json:"name"`
	SportType    string    `gorm:"type:varchar(30);not null" json:"sport_type"`
	PricePerHour float64   `gorm:"not null" json:"price_per_hour"`
	OpenTime     string    `gorm:"type:varchar(5);not null" json:"open_time"`  // wall clock "HH:MM"
	CloseTime    string    `gorm:"type:varchar(5);not null" json:"close_time"` // wall clock "HH:MM"
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
