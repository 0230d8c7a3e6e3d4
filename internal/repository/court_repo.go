package repository

import (
	"context"

	"github.com/wuttipat/court-booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourtRepository interface {
	Create(ctx context.Context, court *models.Court) error
	FindByID(ctx context.Context, id uint) (*models.Court, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Court, error)
	FindAll(ctx context.Context) ([]models.Court, error)
	Update(ctx context.Context, court *models.Court) error
	GetDB() *gorm.DB
}

type courtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) CourtRepository {
	return &courtRepository{db: db}
}

func (r *courtRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *courtRepository) Create(ctx context.Context, court *models.Court) error {
	return r.db.WithContext(ctx).Create(court).Error
}

func (r *courtRepository) FindByID(ctx context.Context, id uint) (*models.Court, error) {
	var court models.Court
	if err := r.db.WithContext(ctx).First(&court, id).Error; err != nil {
		return nil, err
	}
	return &court, nil
}

// FindByIDForUpdate acquires a row-level lock on the court within the given
// transaction. Every write that touches the court's windows locks this row
// first, so concurrent booking and maintenance decisions serialize per court.
func (r *courtRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Court, error) {
	var court models.Court
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&court, id).Error; err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *courtRepository) FindAll(ctx context.Context) ([]models.Court, error) {
	var courts []models.Court
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *courtRepository) Update(ctx context.Context, court *models.Court) error {
	return r.db.WithContext(ctx).Save(court).Error
}
