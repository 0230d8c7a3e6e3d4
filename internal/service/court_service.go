package service

import (
	"context"
	"errors"

	"github.com/wuttipat/court-booking-service/internal/models"
	"github.com/wuttipat/court-booking-service/internal/repository"
	"github.com/wuttipat/court-booking-service/internal/schedule"
	"gorm.io/gorm"
)

type CourtUpdate struct {
	Name         *string
	SportType    *string
	PricePerHour *float64
	OpenTime     *string
	CloseTime    *string
	Active       *bool
}

type CourtService interface {
	CreateCourt(ctx context.Context, court *models.Court) error
	GetCourt(ctx context.Context, id uint) (*models.Court, error)
	ListCourts(ctx context.Context) ([]models.Court, error)
	UpdateCourt(ctx context.Context, ownerID string, id uint, update CourtUpdate) (*models.Court, error)
	SetMaintenance(ctx context.Context, ownerID string, block *models.MaintenanceBlock) error
	ClearMaintenance(ctx context.Context, ownerID string, courtID uint, date, startTime, endTime string) error
}

type courtService struct {
	courtRepo       repository.CourtRepository
	bookingRepo     repository.BookingRepository
	maintenanceRepo repository.MaintenanceRepository
}

func NewCourtService(
	courtRepo repository.CourtRepository,
	bookingRepo repository.BookingRepository,
	maintenanceRepo repository.MaintenanceRepository,
) CourtService {
	return &courtService{
		courtRepo:       courtRepo,
		bookingRepo:     bookingRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

func (s *courtService) CreateCourt(ctx context.Context, court *models.Court) error {
	if !schedule.ValidClock(court.OpenTime) || !schedule.ValidClock(court.CloseTime) {
		return ErrInvalidWindow
	}
	court.Active = true
	return s.courtRepo.Create(ctx, court)
}

func (s *courtService) GetCourt(ctx context.Context, id uint) (*models.Court, error) {
	court, err := s.courtRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

func (s *courtService) ListCourts(ctx context.Context) ([]models.Court, error) {
	return s.courtRepo.FindAll(ctx)
}

// UpdateCourt applies owner edits to the court profile. Existing bookings
// keep the window and price they were created with; only schedules derived
// after the update see the new hours and rates.
func (s *courtService) UpdateCourt(ctx context.Context, ownerID string, id uint, update CourtUpdate) (*models.Court, error) {
	court, err := s.GetCourt(ctx, id)
	if err != nil {
		return nil, err
	}
	if court.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	if update.Name != nil {
		court.Name = *update.Name
	}
	if update.SportType != nil {
		court.SportType = *update.SportType
	}
	if update.PricePerHour != nil {
		court.PricePerHour = *update.PricePerHour
	}
	if update.OpenTime != nil {
		if !schedule.ValidClock(*update.OpenTime) {
			return nil, ErrInvalidWindow
		}
		court.OpenTime = *update.OpenTime
	}
	if update.CloseTime != nil {
		if !schedule.ValidClock(*update.CloseTime) {
			return nil, ErrInvalidWindow
		}
		court.CloseTime = *update.CloseTime
	}
	if update.Active != nil {
		court.Active = *update.Active
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		return nil, err
	}
	return court, nil
}

// SetMaintenance places a maintenance block over a window. The court row is
// locked so the check for active bookings and the insert are atomic: a block
// never lands on a window that already has a confirmed booking, and a booking
// racing against the block loses on its own re-check under the same lock.
func (s *courtService) SetMaintenance(ctx context.Context, ownerID string, block *models.MaintenanceBlock) error {
	if _, err := schedule.ParseDate(block.Date); err != nil {
		return ErrInvalidDate
	}
	if !schedule.ValidClock(block.StartTime) || !schedule.ValidClock(block.EndTime) || block.StartTime >= block.EndTime {
		return ErrInvalidWindow
	}

	return s.courtRepo.GetDB().Transaction(func(tx *gorm.DB) error {
		court, err := s.courtRepo.FindByIDForUpdate(ctx, tx, block.CourtID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourtNotFound
			}
			return err
		}
		if court.OwnerID != ownerID {
			return ErrForbidden
		}

		booked, err := s.bookingRepo.ExistsBookedOverlapping(ctx, tx, block.CourtID, block.Date, block.StartTime, block.EndTime)
		if err != nil {
			return err
		}
		if booked {
			return ErrWindowBooked
		}

		return s.maintenanceRepo.Create(ctx, tx, block)
	})
}

func (s *courtService) ClearMaintenance(ctx context.Context, ownerID string, courtID uint, date, startTime, endTime string) error {
	court, err := s.GetCourt(ctx, courtID)
	if err != nil {
		return err
	}
	if court.OwnerID != ownerID {
		return ErrForbidden
	}

	deleted, err := s.maintenanceRepo.DeleteByWindow(ctx, courtID, date, startTime, endTime)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrInvalidWindow
	}
	return nil
}
