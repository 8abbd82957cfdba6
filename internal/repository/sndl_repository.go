package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// SndlDemandRepository defines persistence for SNDL demands.
type SndlDemandRepository interface {
	Create(ctx context.Context, demand *models.SndlDemand) error
	GetByID(ctx context.Context, id string) (*models.SndlDemand, error)
	FindBlocking(ctx context.Context, userID string) (*models.SndlDemand, error)
	Save(ctx context.Context, demand *models.SndlDemand) error
	ListByUser(ctx context.Context, userID string) ([]models.SndlDemand, error)
	ListAll(ctx context.Context, page, pageSize int) ([]models.SndlDemand, int64, error)
}

type sndlDemandRepository struct {
	db *gorm.DB
}

func NewSndlDemandRepository(db *gorm.DB) SndlDemandRepository {
	return &sndlDemandRepository{db: db}
}

func (r *sndlDemandRepository) Create(ctx context.Context, demand *models.SndlDemand) error {
	if err := r.db.WithContext(ctx).Create(demand).Error; err != nil {
		return fmt.Errorf("create sndl demand: %w", translateError(err))
	}
	return nil
}

func (r *sndlDemandRepository) GetByID(ctx context.Context, id string) (*models.SndlDemand, error) {
	var d models.SndlDemand
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

// FindBlocking returns the user's PENDING or APPROVED demand, if any. Returns
// ErrNotFound when nothing blocks a new demand.
func (r *sndlDemandRepository) FindBlocking(ctx context.Context, userID string) (*models.SndlDemand, error) {
	var d models.SndlDemand
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{models.DemandPending, models.DemandApproved}).
		First(&d).Error; err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

func (r *sndlDemandRepository) Save(ctx context.Context, demand *models.SndlDemand) error {
	if err := r.db.WithContext(ctx).Save(demand).Error; err != nil {
		return fmt.Errorf("save sndl demand: %w", translateError(err))
	}
	return nil
}

func (r *sndlDemandRepository) ListByUser(ctx context.Context, userID string) ([]models.SndlDemand, error) {
	var list []models.SndlDemand
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("requested_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list sndl demands: %w", err)
	}
	return list, nil
}

func (r *sndlDemandRepository) ListAll(ctx context.Context, page, pageSize int) ([]models.SndlDemand, int64, error) {
	var list []models.SndlDemand
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.SndlDemand{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count sndl demands: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("requested_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list sndl demands: %w", err)
	}
	return list, total, nil
}
