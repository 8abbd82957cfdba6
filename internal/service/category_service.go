package service

import (
	"context"
	"errors"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/shared"
)

// CategoryService keeps category names unique. Name comparison is exact and
// case-sensitive; renaming a category to its own current name is a no-op
// success.
type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetBooksByCategory(ctx context.Context, id int64) ([]models.Book, error)
	Create(ctx context.Context, actor shared.AuthContext, category *models.Category) error
	Rename(ctx context.Context, actor shared.AuthContext, id int64, name string) (*models.Category, error)
	Delete(ctx context.Context, actor shared.AuthContext, id int64) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) GetBooksByCategory(ctx context.Context, id int64) ([]models.Book, error) {
	return s.repo.GetBooksByCategory(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, actor shared.AuthContext, category *models.Category) error {
	if !actor.IsLibrarian() {
		return apperrors.Forbiddenf("librarian role required")
	}
	if _, err := s.repo.FindByName(ctx, category.Name); err == nil {
		return apperrors.Conflictf("category %q already exists", category.Name)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return s.repo.Create(ctx, category)
}

func (s *categoryService) Rename(ctx context.Context, actor shared.AuthContext, id int64, name string) (*models.Category, error) {
	if !actor.IsLibrarian() {
		return nil, apperrors.Forbiddenf("librarian role required")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Name == name {
		return current, nil
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, apperrors.Conflictf("category %q already exists", name)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Rename(ctx, id, name); err != nil {
		return nil, err
	}
	current.Name = name
	return current, nil
}

func (s *categoryService) Delete(ctx context.Context, actor shared.AuthContext, id int64) error {
	if !actor.IsLibrarian() {
		return apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.Delete(ctx, id)
}
