package models

import "time"

// MaintenanceBlock is an owner-imposed override that removes windows from
// availability independent of bookings. A block may span several windows.
type MaintenanceBlock struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourtID   uint      `gorm:"not null;index:idx_maintenance_court_date" json:"court_id"`
	Date      string    `gorm:"type:varchar(10);not null;index:idx_maintenance_court_date" json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
