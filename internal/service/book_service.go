package service

import (
	"context"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/shared"
)

// BookService covers the dashboard book CRUD. Reads are open to any
// authenticated user; mutation requires the librarian role.
type BookService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, actor shared.AuthContext, book *models.Book, categoryIDs []int64) error
	Update(ctx context.Context, actor shared.AuthContext, id int64, book *models.Book, categoryIDs []int64) error
	Delete(ctx context.Context, actor shared.AuthContext, id int64) error
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Create(ctx context.Context, actor shared.AuthContext, book *models.Book, categoryIDs []int64) error {
	if !actor.IsLibrarian() {
		return apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.Create(ctx, book, categoryIDs)
}

func (s *bookService) Update(ctx context.Context, actor shared.AuthContext, id int64, book *models.Book, categoryIDs []int64) error {
	if !actor.IsLibrarian() {
		return apperrors.Forbiddenf("librarian role required")
	}
	if err := s.repo.Update(ctx, id, book); err != nil {
		return err
	}
	if categoryIDs != nil {
		return s.repo.ReplaceCategories(ctx, id, categoryIDs)
	}
	return nil
}

func (s *bookService) Delete(ctx context.Context, actor shared.AuthContext, id int64) error {
	if !actor.IsLibrarian() {
		return apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.Delete(ctx, id)
}
