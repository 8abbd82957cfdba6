package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// BookRequestRepository defines persistence for acquisition requests.
type BookRequestRepository interface {
	Create(ctx context.Context, request *models.BookRequest) error
	GetByID(ctx context.Context, id int64) (*models.BookRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListByUser(ctx context.Context, userID string) ([]models.BookRequest, error)
	ListAll(ctx context.Context, page, pageSize int) ([]models.BookRequest, int64, error)
}

type bookRequestRepository struct {
	db *gorm.DB
}

func NewBookRequestRepository(db *gorm.DB) BookRequestRepository {
	return &bookRequestRepository{db: db}
}

func (r *bookRequestRepository) Create(ctx context.Context, request *models.BookRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("create book request: %w", err)
	}
	return nil
}

func (r *bookRequestRepository) GetByID(ctx context.Context, id int64) (*models.BookRequest, error) {
	var req models.BookRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

func (r *bookRequestRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result := r.db.WithContext(ctx).Model(&models.BookRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update book request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *bookRequestRepository) ListByUser(ctx context.Context, userID string) ([]models.BookRequest, error) {
	var list []models.BookRequest
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("requested_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list book requests: %w", err)
	}
	return list, nil
}

func (r *bookRequestRepository) ListAll(ctx context.Context, page, pageSize int) ([]models.BookRequest, int64, error) {
	var list []models.BookRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.BookRequest{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count book requests: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("requested_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list book requests: %w", err)
	}
	return list, total, nil
}
