package repository

import (
	"context"

	"github.com/wuttipat/court-booking-service/internal/models"
	"gorm.io/gorm"
)

type JoinRequestRepository interface {
	Create(ctx context.Context, tx *gorm.DB, request *models.JoinRequest) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.JoinRequest, error)
	FindByMatch(ctx context.Context, matchID uint) ([]models.JoinRequest, error)
	FindActive(ctx context.Context, tx *gorm.DB, matchID uint, requesterID string) (*models.JoinRequest, error)
	CountAccepted(ctx context.Context, tx *gorm.DB, matchID uint) (int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.JoinRequestStatus) error
	GetDB() *gorm.DB
}

type joinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *joinRequestRepository) Create(ctx context.Context, tx *gorm.DB, request *models.JoinRequest) error {
	return tx.WithContext(ctx).Create(request).Error
}

func (r *joinRequestRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.JoinRequest, error) {
	var request models.JoinRequest
	if err := tx.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *joinRequestRepository) FindByMatch(ctx context.Context, matchID uint) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// FindActive returns the requester's pending or accepted request for a match,
// or gorm.ErrRecordNotFound if only declined requests (or none) exist.
func (r *joinRequestRepository) FindActive(ctx context.Context, tx *gorm.DB, matchID uint, requesterID string) (*models.JoinRequest, error) {
	var request models.JoinRequest
	err := tx.WithContext(ctx).
		Where("match_id = ? AND requester_id = ? AND status <> ?", matchID, requesterID, models.RequestDeclined).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *joinRequestRepository) CountAccepted(ctx context.Context, tx *gorm.DB, matchID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&models.JoinRequest{}).
		Where("match_id = ? AND status = ?", matchID, models.RequestAccepted).
		Count(&count).Error
	return count, err
}

func (r *joinRequestRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.JoinRequestStatus) error {
	return tx.WithContext(ctx).Model(&models.JoinRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
