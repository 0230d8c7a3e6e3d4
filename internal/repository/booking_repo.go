package repository

import (
	"context"

	"github.com/wuttipat/court-booking-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]models.Booking, error)
	FindBookedByCourtDate(ctx context.Context, tx *gorm.DB, courtID uint, date string) ([]models.Booking, error)
	ExistsBookedOverlapping(ctx context.Context, tx *gorm.DB, courtID uint, date, startTime, endTime string) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error
	StampPaymentRef(ctx context.Context, reference, paymentRef string) (int64, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Court").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Court").
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindBookedByCourtDate returns the active bookings for a court on a date.
// Callers outside a transaction pass GetDB().
func (r *bookingRepository) FindBookedByCourtDate(ctx context.Context, tx *gorm.DB, courtID uint, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := tx.WithContext(ctx).
		Where("court_id = ? AND date = ? AND status = ?", courtID, date, models.StatusBooked).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ExistsBookedOverlapping reports whether any active booking intersects the
// half-open window [startTime, endTime). Zero-padded HH:MM strings compare
// correctly with lexicographic ordering.
func (r *bookingRepository) ExistsBookedOverlapping(ctx context.Context, tx *gorm.DB, courtID uint, date, startTime, endTime string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&models.Booking{}).
		Where("court_id = ? AND date = ? AND status = ? AND start_time < ? AND end_time > ?",
			courtID, date, models.StatusBooked, endTime, startTime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// StampPaymentRef records the payment reference on a booking once. Replayed
// payment events match zero rows and are ignored.
func (r *bookingRepository) StampPaymentRef(ctx context.Context, reference, paymentRef string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("reference = ? AND payment_ref IS NULL", reference).
		Update("payment_ref", paymentRef)
	return res.RowsAffected, res.Error
}
