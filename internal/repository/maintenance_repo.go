package repository

import (
	"context"

	"github.com/wuttipat/court-booking-service/internal/models"
	"gorm.io/gorm"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, block *models.MaintenanceBlock) error
	FindByCourtDate(ctx context.Context, tx *gorm.DB, courtID uint, date string) ([]models.MaintenanceBlock, error)
	DeleteByWindow(ctx context.Context, courtID uint, date, startTime, endTime string) (int64, error)
	GetDB() *gorm.DB
}

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *maintenanceRepository) Create(ctx context.Context, tx *gorm.DB, block *models.MaintenanceBlock) error {
	return tx.WithContext(ctx).Create(block).Error
}

func (r *maintenanceRepository) FindByCourtDate(ctx context.Context, tx *gorm.DB, courtID uint, date string) ([]models.MaintenanceBlock, error) {
	var blocks []models.MaintenanceBlock
	err := tx.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, date).
		Order("start_time ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *maintenanceRepository) DeleteByWindow(ctx context.Context, courtID uint, date, startTime, endTime string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ? AND start_time = ? AND end_time = ?", courtID, date, startTime, endTime).
		Delete(&models.MaintenanceBlock{})
	return res.RowsAffected, res.Error
}
