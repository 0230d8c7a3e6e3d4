package models

import "time"

type MatchStatus string

const (
	MatchUpcoming  MatchStatus = "upcoming"
	MatchCancelled MatchStatus = "cancelled"
	MatchCompleted MatchStatus = "completed"
)

// PlayersRequired is the capacity for non-creator participants; the creator
// never occupies a slot.
type Match struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CreatorID       string      `gorm:"not null;index" json:"creator_id"`
	DateTime        time.Time   `gorm:"not null" json:"date_time"`
	Location        string      `gorm:"not null" json:"location"`
	Level           string      `gorm:"type:varchar(30)" json:"level"`
	PlayersRequired int         `gorm:"not null" json:"players_required"`
	Status          MatchStatus `gorm:"type:varchar(20);not null;default:'upcoming'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
