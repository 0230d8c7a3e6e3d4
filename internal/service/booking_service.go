package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wuttipat/court-booking-service/internal/models"
	"github.com/wuttipat/court-booking-service/internal/notifier"
	"github.com/wuttipat/court-booking-service/internal/repository"
	"github.com/wuttipat/court-booking-service/internal/schedule"
	"gorm.io/gorm"
)

type BookingOutcome string

const (
	OutcomeCreated         BookingOutcome = "created"
	OutcomeSlotUnavailable BookingOutcome = "slot_unavailable"
	OutcomeInvalidWindow   BookingOutcome = "invalid_window"
	OutcomeError           BookingOutcome = "error"
)

// BookingResult reports what happened to one requested window. Windows are
// decided independently; only court-level failures (missing or inactive
// court) abort the request as a whole.
type BookingResult struct {
	StartTime string
	Outcome   BookingOutcome
	Booking   *models.Booking
}

type BookingService interface {
	CreateBookings(ctx context.Context, userID string, courtID uint, date string, startTimes []string) ([]BookingResult, error)
	GetBooking(ctx context.Context, userID string, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, userID string, id uint) (*models.Booking, error)
	CompleteBooking(ctx context.Context, ownerID string, id uint) (*models.Booking, error)
}

type bookingService struct {
	courtRepo       repository.CourtRepository
	bookingRepo     repository.BookingRepository
	maintenanceRepo repository.MaintenanceRepository
	slotConfig      *schedule.SlotConfig
	notify          notifier.Notifier
	now             func() time.Time
}

func NewBookingService(
	courtRepo repository.CourtRepository,
	bookingRepo repository.BookingRepository,
	maintenanceRepo repository.MaintenanceRepository,
	slotConfig *schedule.SlotConfig,
	notify notifier.Notifier,
) BookingService {
	return &bookingService{
		courtRepo:       courtRepo,
		bookingRepo:     bookingRepo,
		maintenanceRepo: maintenanceRepo,
		slotConfig:      slotConfig,
		notify:          notify,
		now:             time.Now,
	}
}

// CreateBookings attempts to book each requested window in its own
// transaction. The court row is locked FOR UPDATE and the window is
// re-validated against bookings and maintenance blocks under that lock, so
// for any given window at most one concurrent request wins. The partial
// unique index on (court_id, date, start_time) backs the same guarantee at
// the storage layer; a duplicate-key error means another writer got there
// first and maps to slot_unavailable.
func (s *bookingService) CreateBookings(ctx context.Context, userID string, courtID uint, date string, startTimes []string) ([]BookingResult, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}
	if len(startTimes) == 0 {
		return nil, ErrEmptySelection
	}

	results := make([]BookingResult, 0, len(startTimes))
	for _, start := range startTimes {
		result, err := s.bookWindow(ctx, userID, courtID, date, start)
		if err != nil {
			// A missing or inactive court dooms every window; fail the
			// request as a whole instead of reporting per window.
			return nil, err
		}
		results = append(results, result)

		if result.Outcome == OutcomeCreated {
			// Fire-and-forget: a broker outage must not undo a committed booking.
			_ = s.notify.Notify(userID, "booking.created", map[string]any{
				"reference":  result.Booking.Reference,
				"court_id":   courtID,
				"date":       date,
				"start_time": start,
				"price":      result.Booking.Price,
			})
		}
	}
	return results, nil
}

func (s *bookingService) bookWindow(ctx context.Context, userID string, courtID uint, date, start string) (BookingResult, error) {
	var booking *models.Booking

	err := s.bookingRepo.GetDB().Transaction(func(tx *gorm.DB) error {
		court, err := s.courtRepo.FindByIDForUpdate(ctx, tx, courtID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourtNotFound
			}
			return err
		}
		if !court.Active {
			return ErrCourtInactive
		}

		window, ok := s.findWindow(court, date, start)
		if !ok {
			return ErrInvalidWindow
		}
		if schedule.IsPast(date, start, s.now()) {
			return ErrInvalidWindow
		}

		taken, err := s.bookingRepo.ExistsBookedOverlapping(ctx, tx, courtID, date, window.StartTime, window.EndTime)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotUnavailable
		}

		blocks, err := s.maintenanceRepo.FindByCourtDate(ctx, tx, courtID, date)
		if err != nil {
			return err
		}
		// A blocked window counts as unavailable, same as a lost race: the
		// window exists on the schedule, someone else holds it.
		for _, b := range blocks {
			if b.StartTime < window.EndTime && b.EndTime > window.StartTime {
				return ErrSlotUnavailable
			}
		}

		booking = &models.Booking{
			Reference: uuid.NewString(),
			CourtID:   courtID,
			Date:      date,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
			UserID:    userID,
			Price:     window.Price,
			Status:    models.StatusBooked,
		}
		return s.bookingRepo.Create(ctx, tx, booking)
	})

	switch {
	case err == nil:
		return BookingResult{StartTime: start, Outcome: OutcomeCreated, Booking: booking}, nil
	case errors.Is(err, ErrCourtNotFound), errors.Is(err, ErrCourtInactive):
		return BookingResult{}, err
	case errors.Is(err, ErrSlotUnavailable), errors.Is(err, gorm.ErrDuplicatedKey):
		return BookingResult{StartTime: start, Outcome: OutcomeSlotUnavailable}, nil
	case errors.Is(err, ErrInvalidWindow):
		return BookingResult{StartTime: start, Outcome: OutcomeInvalidWindow}, nil
	default:
		log.Printf("[booking] court=%d date=%s start=%s: %v", courtID, date, start, err)
		return BookingResult{StartTime: start, Outcome: OutcomeError}, nil
	}
}

func (s *bookingService) findWindow(court *models.Court, date, start string) (schedule.Window, bool) {
	for _, w := range schedule.Generate(court, date, s.slotConfig) {
		if w.StartTime == start {
			return w, true
		}
	}
	return schedule.Window{}, false
}

func (s *bookingService) GetBooking(ctx context.Context, userID string, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID != userID && (booking.Court == nil || booking.Court.OwnerID != userID) {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}

// CancelBooking releases a window before its start time. The partial unique
// index ignores cancelled rows, so the window is immediately rebookable.
func (s *bookingService) CancelBooking(ctx context.Context, userID string, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	if booking.Status != models.StatusBooked {
		return nil, ErrBookingNotActive
	}
	if schedule.IsPast(booking.Date, booking.StartTime, s.now()) {
		return nil, ErrBookingStarted
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, models.StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.StatusCancelled

	_ = s.notify.Notify(userID, "booking.cancelled", map[string]any{
		"reference": booking.Reference,
	})
	return booking, nil
}

// CompleteBooking is performed by the court owner once the session has ended.
func (s *bookingService) CompleteBooking(ctx context.Context, ownerID string, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.Court == nil || booking.Court.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	if booking.Status != models.StatusBooked {
		return nil, ErrBookingNotActive
	}
	if !schedule.IsPast(booking.Date, booking.EndTime, s.now()) {
		return nil, ErrBookingNotEnded
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, models.StatusCompleted); err != nil {
		return nil, err
	}
	booking.Status = models.StatusCompleted

	_ = s.notify.Notify(booking.UserID, "booking.completed", map[string]any{
		"reference": booking.Reference,
	})
	return booking, nil
}
