package dto

import (
	"time"

	"github.com/wuttipat/court-booking-service/internal/models"
	"github.com/wuttipat/court-booking-service/internal/schedule"
	"github.com/wuttipat/court-booking-service/internal/service"
)

type CourtResponse struct {
	ID           uint    `json:"id"`
	OwnerID      string  `json:"owner_id"`
	Facility     string  `json:"facility"`
	Name         string  `json:"name"`
	SportType    string  `json:"sport_type"`
	PricePerHour float64 `json:"price_per_hour"`
	OpenTime     string  `json:"open_time"`
	CloseTime    string  `json:"close_time"`
	Active       bool    `json:"active"`
}

func ToCourtResponse(c *models.Court) CourtResponse {
	return CourtResponse{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		Facility:     c.Facility,
		Name:         c.Name,
		SportType:    c.SportType,
		PricePerHour: c.PricePerHour,
		OpenTime:     c.OpenTime,
		CloseTime:    c.CloseTime,
		Active:       c.Active,
	}
}

type ScheduleResponse struct {
	CourtID uint              `json:"court_id"`
	Date    string            `json:"date"`
	Windows []schedule.Window `json:"windows"`
}

type SelectionResponse struct {
	EffectiveStart     string  `json:"effective_start"`
	EffectiveEnd       string  `json:"effective_end"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	TotalPrice         float64 `json:"total_price"`
	IsConsecutive      bool    `json:"is_consecutive"`
}

func ToSelectionResponse(s *schedule.SelectionSummary) SelectionResponse {
	return SelectionResponse{
		EffectiveStart:     s.EffectiveStart,
		EffectiveEnd:       s.EffectiveEnd,
		TotalDurationHours: s.TotalDurationHours,
		TotalPrice:         s.TotalPrice,
		IsConsecutive:      s.IsConsecutive,
	}
}

type BookingResponse struct {
	ID         uint    `json:"id"`
	Reference  string  `json:"reference"`
	CourtID    uint    `json:"court_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	UserID     string  `json:"user_id"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	PaymentRef *string `json:"payment_ref,omitempty"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Reference:  b.Reference,
		CourtID:    b.CourtID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		UserID:     b.UserID,
		Price:      b.Price,
		Status:     string(b.Status),
		PaymentRef: b.PaymentRef,
	}
}

type BookingResultResponse struct {
	StartTime string           `json:"start_time"`
	Outcome   string           `json:"outcome"`
	Booking   *BookingResponse `json:"booking,omitempty"`
}

func ToBookingResultResponses(results []service.BookingResult) []BookingResultResponse {
	out := make([]BookingResultResponse, 0, len(results))
	for _, r := range results {
		resp := BookingResultResponse{StartTime: r.StartTime, Outcome: string(r.Outcome)}
		if r.Booking != nil {
			b := ToBookingResponse(r.Booking)
			resp.Booking = &b
		}
		out = append(out, resp)
	}
	return out
}

type MatchResponse struct {
	ID              uint      `json:"id"`
	CreatorID       string    `json:"creator_id"`
	DateTime        time.Time `json:"date_time"`
	Location        string    `json:"location"`
	Level           string    `json:"level"`
	PlayersRequired int       `json:"players_required"`
	Status          string    `json:"status"`
}

func ToMatchResponse(m *models.Match) MatchResponse {
	return MatchResponse{
		ID:              m.ID,
		CreatorID:       m.CreatorID,
		DateTime:        m.DateTime,
		Location:        m.Location,
		Level:           m.Level,
		PlayersRequired: m.PlayersRequired,
		Status:          string(m.Status),
	}
}

type CapacityResponse struct {
	Accepted int64 `json:"accepted"`
	Required int   `json:"required"`
	Full     bool  `json:"full"`
}

type JoinRequestResponse struct {
	ID          uint   `json:"id"`
	MatchID     uint   `json:"match_id"`
	RequesterID string `json:"requester_id"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}

func ToJoinRequestResponse(r *models.JoinRequest) JoinRequestResponse {
	return JoinRequestResponse{
		ID:          r.ID,
		MatchID:     r.MatchID,
		RequesterID: r.RequesterID,
		Status:      string(r.Status),
		Message:     r.Message,
	}
}
