package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// SubmissionRepository handles the append-only contact and idea records.
type SubmissionRepository interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	CreateIdea(ctx context.Context, idea *models.Idea) error
	ListContacts(ctx context.Context, page, pageSize int) ([]models.Contact, int64, error)
	ListIdeas(ctx context.Context, page, pageSize int) ([]models.Idea, int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *submissionRepository) CreateIdea(ctx context.Context, idea *models.Idea) error {
	if err := r.db.WithContext(ctx).Create(idea).Error; err != nil {
		return fmt.Errorf("create idea: %w", err)
	}
	return nil
}

func (r *submissionRepository) ListContacts(ctx context.Context, page, pageSize int) ([]models.Contact, int64, error) {
	var list []models.Contact
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("submitted_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	return list, total, nil
}

func (r *submissionRepository) ListIdeas(ctx context.Context, page, pageSize int) ([]models.Idea, int64, error) {
	var list []models.Idea
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Idea{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count ideas: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("submitted_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list ideas: %w", err)
	}
	return list, total, nil
}
