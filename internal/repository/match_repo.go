package repository

import (
	"context"

	"github.com/wuttipat/court-booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	FindByID(ctx context.Context, id uint) (*models.Match, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Match, error)
	FindAll(ctx context.Context) ([]models.Match, error)
	UpdateStatus(ctx context.Context, id uint, status models.MatchStatus) error
	GetDB() *gorm.DB
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *matchRepository) Create(ctx context.Context, match *models.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *matchRepository) FindByID(ctx context.Context, id uint) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).First(&match, id).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// FindByIDForUpdate locks the match row inside the given transaction so
// concurrent accept decisions serialize against the capacity count.
func (r *matchRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Match, error) {
	var match models.Match
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&match, id).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) FindAll(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := r.db.WithContext(ctx).Order("date_time ASC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id uint, status models.MatchStatus) error {
	return r.db.WithContext(ctx).Model(&models.Match{}).
		Where("id = ?", id).
		Update("status", status).Error
}
