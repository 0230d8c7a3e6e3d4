package database

import (
	"fmt"

	"github.com/wuttipat/court-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema and the two partial unique indexes the write
// paths rely on. GORM's tag-based indexes cannot express a WHERE clause, so
// they are created with raw SQL after AutoMigrate.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Court{},
		&models.Booking{},
		&models.MaintenanceBlock{},
		&models.Match{},
		&models.JoinRequest{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// At most one active booking per court window.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_window
		ON bookings (court_id, date, start_time)
		WHERE status = 'booked'
	`).Error; err != nil {
		return fmt.Errorf("create booking window index: %w", err)
	}

	// At most one non-declined join request per requester per match.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_join_request_active
		ON join_requests (match_id, requester_id)
		WHERE status <> 'declined'
	`).Error; err != nil {
		return fmt.Errorf("create join request index: %w", err)
	}

	return nil
}
