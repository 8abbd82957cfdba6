package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// BookRepository defines the interface for catalog book operations.
type BookRepository interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, book *models.Book, categoryIDs []int64) error
	Update(ctx context.Context, id int64, book *models.Book) error
	Delete(ctx context.Context, id int64) error
	ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("added_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	return list, total, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).Preload("Categories").First(&b, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book, categoryIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			return err
		}
		if len(categoryIDs) == 0 {
			return nil
		}
		categories := make([]models.Category, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			categories = append(categories, models.Category{ID: id})
		}
		return tx.Model(book).Association("Categories").Append(&categories)
	})
	if err != nil {
		return fmt.Errorf("create book: %w", translateError(err))
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, id int64, book *models.Book) error {
	book.ID = id
	// Available belongs to the borrow lifecycle, not to metadata edits. A
	// full-column Save here could overwrite a borrow that committed between
	// the caller's read and this write.
	if err := r.db.WithContext(ctx).Omit("Categories", "Available").Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", translateError(err))
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *bookRepository) ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Book
		if err := tx.First(&b, bookID).Error; err != nil {
			return err
		}
		categories := make([]models.Category, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			categories = append(categories, models.Category{ID: id})
		}
		return tx.Model(&b).Association("Categories").Replace(&categories)
	})
	if err != nil {
		return fmt.Errorf("replace categories: %w", translateError(err))
	}
	return nil
}
