package models

import "time"

type JoinRequestStatus string

const (
	RequestPending  JoinRequestStatus = "pending"
	RequestAccepted JoinRequestStatus = "accepted"
	RequestDeclined JoinRequestStatus = "declined"
)

// JoinRequest rows are terminal once accepted or declined; a declined
// requester submits again with a fresh row. The partial unique index in
// pkg/database keeps at most one non-declined row per (match, requester).
type JoinRequest struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	MatchID     uint              `gorm:"not null;index" json:"match_id"`
	RequesterID string            `gorm:"not null" json:"requester_id"`
	Status      JoinRequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Message     string            `json:"message"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	Match *Match `gorm:"foreignKey:MatchID" json:"match,omitempty"`
}
