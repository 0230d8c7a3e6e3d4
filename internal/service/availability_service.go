package service

import (
	"context"
	"errors"
	"time"

	"github.com/wuttipat/court-booking-service/internal/repository"
	"github.com/wuttipat/court-booking-service/internal/schedule"
	"gorm.io/gorm"
)

type AvailabilityService interface {
	GetDaySchedule(ctx context.Context, courtID uint, date string) ([]schedule.Window, error)
	ComputeSelection(ctx context.Context, courtID uint, date string, startTimes []string) (*schedule.SelectionSummary, error)
}

type availabilityService struct {
	courtRepo       repository.CourtRepository
	bookingRepo     repository.BookingRepository
	maintenanceRepo repository.MaintenanceRepository
	slotConfig      *schedule.SlotConfig
	now             func() time.Time
}

func NewAvailabilityService(
	courtRepo repository.CourtRepository,
	bookingRepo repository.BookingRepository,
	maintenanceRepo repository.MaintenanceRepository,
	slotConfig *schedule.SlotConfig,
) AvailabilityService {
	return &availabilityService{
		courtRepo:       courtRepo,
		bookingRepo:     bookingRepo,
		maintenanceRepo: maintenanceRepo,
		slotConfig:      slotConfig,
		now:             time.Now,
	}
}

// GetDaySchedule builds the full window list for a court on a date, with
// each window carrying its current status. The schedule is always derived
// fresh from operating hours plus bookings and maintenance blocks; nothing
// is cached, so a booking committed a moment ago is already reflected.
func (s *availabilityService) GetDaySchedule(ctx context.Context, courtID uint, date string) ([]schedule.Window, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	court, err := s.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	if !court.Active {
		return nil, ErrCourtInactive
	}

	windows := schedule.Generate(court, date, s.slotConfig)
	if len(windows) == 0 {
		return windows, nil
	}

	db := s.bookingRepo.GetDB()
	bookings, err := s.bookingRepo.FindBookedByCourtDate(ctx, db, courtID, date)
	if err != nil {
		return nil, err
	}
	blocks, err := s.maintenanceRepo.FindByCourtDate(ctx, s.maintenanceRepo.GetDB(), courtID, date)
	if err != nil {
		return nil, err
	}

	return schedule.Reconcile(windows, date, bookings, blocks, s.now()), nil
}

// ComputeSelection summarizes a set of chosen start times against the live
// schedule. Every chosen window must exist and be available.
func (s *availabilityService) ComputeSelection(ctx context.Context, courtID uint, date string, startTimes []string) (*schedule.SelectionSummary, error) {
	if len(startTimes) == 0 {
		return nil, ErrEmptySelection
	}

	windows, err := s.GetDaySchedule(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	byStart := make(map[string]schedule.Window, len(windows))
	for _, w := range windows {
		byStart[w.StartTime] = w
	}

	selected := make([]schedule.Window, 0, len(startTimes))
	for _, start := range startTimes {
		w, ok := byStart[start]
		if !ok {
			return nil, ErrSelectionMismatch
		}
		if w.Status != schedule.StatusAvailable {
			return nil, ErrInvalidWindow
		}
		selected = append(selected, w)
	}

	summary, err := schedule.ComputeSelection(selected)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
