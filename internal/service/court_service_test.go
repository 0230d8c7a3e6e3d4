package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wuttipat/court-booking-service/internal/models"
)

func TestCreateCourt_MalformedHours(t *testing.T) {
	svc := NewCourtService(nil, nil, nil)

	err := svc.CreateCourt(context.Background(), &models.Court{
		OwnerID:   "owner-1",
		Name:      "Court A",
		OpenTime:  "six am",
		CloseTime: "22:00",
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestSetMaintenance_InvalidDate(t *testing.T) {
	svc := NewCourtService(nil, nil, nil)

	err := svc.SetMaintenance(context.Background(), "owner-1", &models.MaintenanceBlock{
		CourtID:   1,
		Date:      "07/09/2026",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSetMaintenance_InvertedWindow(t *testing.T) {
	svc := NewCourtService(nil, nil, nil)

	err := svc.SetMaintenance(context.Background(), "owner-1", &models.MaintenanceBlock{
		CourtID:   1,
		Date:      "2026-09-07",
		StartTime: "12:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
