package service

import (
	"context"
	"time"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/shared"
)

// BorrowService enforces the borrow lifecycle: create with a 14-day loan
// period, due-date extension while open, and return by the borrower or a
// librarian. The repository carries the transactional invariants; this layer
// owns validation and authorization.
type BorrowService interface {
	Create(ctx context.Context, actor shared.AuthContext, bookID int64) (*models.Borrow, error)
	Extend(ctx context.Context, actor shared.AuthContext, borrowID string, weeks int) (*models.Borrow, error)
	Return(ctx context.Context, actor shared.AuthContext, borrowID string) (*models.Borrow, error)
	ListMine(ctx context.Context, actor shared.AuthContext) ([]models.Borrow, error)
	ListAll(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.Borrow, int64, error)
}

type borrowService struct {
	repo repository.BorrowRepository
	now  func() time.Time
}

func NewBorrowService(repo repository.BorrowRepository) BorrowService {
	return &borrowService{repo: repo, now: time.Now}
}

func (s *borrowService) Create(ctx context.Context, actor shared.AuthContext, bookID int64) (*models.Borrow, error) {
	if bookID <= 0 {
		return nil, apperrors.InvalidArgumentf("book_id must be positive")
	}
	dueDate := s.now().Add(models.BorrowPeriod)
	return s.repo.Create(ctx, bookID, actor.UserID, dueDate)
}

func (s *borrowService) Extend(ctx context.Context, actor shared.AuthContext, borrowID string, weeks int) (*models.Borrow, error) {
	if weeks < models.MinExtensionWeeks || weeks > models.MaxExtensionWeeks {
		return nil, apperrors.InvalidArgumentf("weeks must be between %d and %d",
			models.MinExtensionWeeks, models.MaxExtensionWeeks)
	}

	borrow, err := s.repo.GetByID(ctx, borrowID)
	if err != nil {
		return nil, err
	}
	if !actor.Is(borrow.UserID) && !actor.IsLibrarian() {
		return nil, apperrors.Forbiddenf("only the borrower may extend a borrow")
	}
	return s.repo.Extend(ctx, borrowID, weeks)
}

func (s *borrowService) Return(ctx context.Context, actor shared.AuthContext, borrowID string) (*models.Borrow, error) {
	borrow, err := s.repo.GetByID(ctx, borrowID)
	if err != nil {
		return nil, err
	}
	if !actor.Is(borrow.UserID) && !actor.IsLibrarian() {
		return nil, apperrors.Forbiddenf("only the borrower or a librarian may return a borrow")
	}
	return s.repo.Return(ctx, borrowID, s.now())
}

func (s *borrowService) ListMine(ctx context.Context, actor shared.AuthContext) ([]models.Borrow, error) {
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *borrowService) ListAll(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.Borrow, int64, error) {
	if !actor.IsLibrarian() {
		return nil, 0, apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.ListAll(ctx, page, pageSize)
}
