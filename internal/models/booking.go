package models

import "time"

type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking covers exactly one generated window. Multi-hour reservations are
// stored as multiple rows, one per window, never a single spanning row.
type Booking struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Reference  string        `gorm:"type:varchar(36);not null;uniqueIndex" json:"reference"`
	CourtID    uint          `gorm:"not null;index" json:"court_id"`
	Date       string        `gorm:"type:varchar(10);not null" json:"date"`       // "YYYY-MM-DD"
	StartTime  string        `gorm:"type:varchar(5);not null" json:"start_time"`  // "HH:MM"
	EndTime    string        `gorm:"type:varchar(5);not null" json:"end_time"`    // "HH:MM"
	UserID     string        `gorm:"not null;index" json:"user_id"`
	Price      float64       `gorm:"not null" json:"price"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'booked'" json:"status"`
	PaymentRef *string       `json:"payment_ref,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Court *Court `gorm:"foreignKey:CourtID" json:"court,omitempty"`
}
