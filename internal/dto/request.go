package dto

import "time"

type CreateCourtRequest struct {
	Facility     string  `json:"facility"`
	Name         string  `json:"name"`
	SportType    string  `json:"sport_type"`
	PricePerHour float64 `json:"price_per_hour"`
	OpenTime     string  `json:"open_time"`
	CloseTime    string  `json:"close_time"`
}

type UpdateCourtRequest struct {
	Name         *string  `json:"name"`
	SportType    *string  `json:"sport_type"`
	PricePerHour *float64 `json:"price_per_hour"`
	OpenTime     *string  `json:"open_time"`
	CloseTime    *string  `json:"close_time"`
	Active       *bool    `json:"active"`
}

type CreateBookingsRequest struct {
	CourtID    uint     `json:"court_id"`
	Date       string   `json:"date"`
	StartTimes []string `json:"start_times"`
}

type SelectionRequest struct {
	Date       string   `json:"date"`
	StartTimes []string `json:"start_times"`
}

type MaintenanceRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

type CreateMatchRequest struct {
	DateTime        time.Time `json:"date_time"`
	Location        string    `json:"location"`
	Level           string    `json:"level"`
	PlayersRequired int       `json:"players_required"`
}

type JoinRequestRequest struct {
	Message string `json:"message"`
}

type DecisionRequest struct {
	Accept *bool `json:"accept"`
}
