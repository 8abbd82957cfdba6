package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// MockCategoryRepository mocks the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Rename(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetBooksByCategory(ctx context.Context, id int64) ([]models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	repo.On("FindByName", mock.Anything, "Databases").Return(&models.Category{ID: 1, Name: "Databases"}, nil)

	err := svc.Create(context.Background(), librarianActor, &models.Category{Name: "Databases"})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "Create")
}

func TestCategoryCreate_RequiresLibrarian(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	err := svc.Create(context.Background(), student, &models.Category{Name: "Databases"})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "FindByName")
}

func TestCategoryRename(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&models.Category{ID: 3, Name: "Networking"}, nil)
	repo.On("FindByName", mock.Anything, "Networks").Return(nil, apperrors.NotFoundf("not found"))
	repo.On("Rename", mock.Anything, int64(3), "Networks").Return(nil)

	got, err := svc.Rename(context.Background(), librarianActor, 3, "Networks")

	assert.NoError(t, err)
	assert.Equal(t, "Networks", got.Name)
	repo.AssertExpectations(t)
}

func TestCategoryRename_OwnNameIsNoOp(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&models.Category{ID: 3, Name: "Networking"}, nil)

	got, err := svc.Rename(context.Background(), librarianActor, 3, "Networking")

	assert.NoError(t, err)
	assert.Equal(t, "Networking", got.Name)
	repo.AssertNotCalled(t, "FindByName")
	repo.AssertNotCalled(t, "Rename")
}

func TestCategoryRename_Collision(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&models.Category{ID: 3, Name: "Networking"}, nil)
	repo.On("FindByName", mock.Anything, "Databases").Return(&models.Category{ID: 1, Name: "Databases"}, nil)

	_, err := svc.Rename(context.Background(), librarianActor, 3, "Databases")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "Rename")
}

func TestCategoryRename_CaseSensitive(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo)

	// "networking" is a distinct name from "Networking".
	repo.On("GetByID", mock.Anything, int64(3)).Return(&models.Category{ID: 3, Name: "Networking"}, nil)
	repo.On("FindByName", mock.Anything, "networking").Return(nil, apperrors.NotFoundf("not found"))
	repo.On("Rename", mock.Anything, int64(3), "networking").Return(nil)

	got, err := svc.Rename(context.Background(), librarianActor, 3, "networking")

	assert.NoError(t, err)
	assert.Equal(t, "networking", got.Name)
}
