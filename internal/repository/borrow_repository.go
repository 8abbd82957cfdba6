package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// BorrowRepository owns the borrow state machine's persistence. Create and
// Return run in a single transaction with the book row locked FOR UPDATE, so
// the availability flag and the borrow rows can never disagree. The partial
// unique index on open borrows is the structural backstop for racing creates.
type BorrowRepository interface {
	Create(ctx context.Context, bookID int64, userID string, dueDate time.Time) (*models.Borrow, error)
	Extend(ctx context.Context, borrowID string, weeks int) (*models.Borrow, error)
	Return(ctx context.Context, borrowID string, now time.Time) (*models.Borrow, error)
	GetByID(ctx context.Context, borrowID string) (*models.Borrow, error)
	ListByUser(ctx context.Context, userID string) ([]models.Borrow, error)
	ListAll(ctx context.Context, page, pageSize int) ([]models.Borrow, int64, error)
}

type borrowRepository struct {
	db *gorm.DB
}

func NewBorrowRepository(db *gorm.DB) BorrowRepository {
	return &borrowRepository{db: db}
}

func (r *borrowRepository) Create(ctx context.Context, bookID int64, userID string, dueDate time.Time) (*models.Borrow, error) {
	var borrow *models.Borrow

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the book row so the availability check and the insert are
		// serialized against a concurrent create for the same book.
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundf("book %d", bookID)
			}
			return err
		}

		if !book.Available {
			return apperrors.Conflictf("book %d is not available", bookID)
		}

		var open int64
		if err := tx.Model(&models.Borrow{}).
			Where("book_id = ? AND user_id = ? AND returned_at IS NULL", bookID, userID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return apperrors.Conflictf("user already holds an open borrow of book %d", bookID)
		}

		borrow = &models.Borrow{
			BookID:  bookID,
			UserID:  userID,
			DueDate: dueDate,
		}
		if err := tx.Create(borrow).Error; err != nil {
			return translateError(err)
		}

		return tx.Model(&models.Book{}).Where("id = ?", bookID).
			Update("available", false).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create borrow: %w", err)
	}
	return borrow, nil
}

func (r *borrowRepository) Extend(ctx context.Context, borrowID string, weeks int) (*models.Borrow, error) {
	var borrow models.Borrow

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&borrow, "id = ?", borrowID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundf("borrow %s", borrowID)
			}
			return err
		}

		if err := borrow.ExtendDueDate(weeks); err != nil {
			switch {
			case errors.Is(err, models.ErrExtensionOutOfRange):
				return apperrors.InvalidArgumentf("weeks must be between %d and %d",
					models.MinExtensionWeeks, models.MaxExtensionWeeks)
			case errors.Is(err, models.ErrBorrowClosed):
				return apperrors.Conflictf("borrow %s is already returned", borrowID)
			}
			return err
		}

		return tx.Model(&models.Borrow{}).Where("id = ?", borrowID).
			Update("due_date", borrow.DueDate).Error
	})
	if err != nil {
		return nil, fmt.Errorf("extend borrow: %w", err)
	}
	return &borrow, nil
}

func (r *borrowRepository) Return(ctx context.Context, borrowID string, now time.Time) (*models.Borrow, error) {
	var borrow models.Borrow

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&borrow, "id = ?", borrowID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundf("borrow %s", borrowID)
			}
			return err
		}

		if err := borrow.MarkReturned(now); err != nil {
			return apperrors.Conflictf("borrow %s is already returned", borrowID)
		}

		if err := tx.Model(&models.Borrow{}).Where("id = ?", borrowID).
			Update("returned_at", borrow.ReturnedAt).Error; err != nil {
			return err
		}

		return tx.Model(&models.Book{}).Where("id = ?", borrow.BookID).
			Update("available", true).Error
	})
	if err != nil {
		return nil, fmt.Errorf("return borrow: %w", err)
	}
	return &borrow, nil
}

func (r *borrowRepository) GetByID(ctx context.Context, borrowID string) (*models.Borrow, error) {
	var borrow models.Borrow
	if err := r.db.WithContext(ctx).Preload("Book").First(&borrow, "id = ?", borrowID).Error; err != nil {
		return nil, translateError(err)
	}
	return &borrow, nil
}

func (r *borrowRepository) ListByUser(ctx context.Context, userID string) ([]models.Borrow, error) {
	var list []models.Borrow
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("borrowed_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list borrows: %w", err)
	}
	return list, nil
}

func (r *borrowRepository) ListAll(ctx context.Context, page, pageSize int) ([]models.Borrow, int64, error) {
	var list []models.Borrow
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Borrow{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count borrows: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Order("borrowed_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list borrows: %w", err)
	}
	return list, total, nil
}
