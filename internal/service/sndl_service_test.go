package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// MockSndlDemandRepository mocks the SndlDemandRepository interface
type MockSndlDemandRepository struct {
	mock.Mock
}

func (m *MockSndlDemandRepository) Create(ctx context.Context, demand *models.SndlDemand) error {
	args := m.Called(ctx, demand)
	return args.Error(0)
}

func (m *MockSndlDemandRepository) GetByID(ctx context.Context, id string) (*models.SndlDemand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SndlDemand), args.Error(1)
}

func (m *MockSndlDemandRepository) FindBlocking(ctx context.Context, userID string) (*models.SndlDemand, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SndlDemand), args.Error(1)
}

func (m *MockSndlDemandRepository) Save(ctx context.Context, demand *models.SndlDemand) error {
	args := m.Called(ctx, demand)
	return args.Error(0)
}

func (m *MockSndlDemandRepository) ListByUser(ctx context.Context, userID string) ([]models.SndlDemand, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SndlDemand), args.Error(1)
}

func (m *MockSndlDemandRepository) ListAll(ctx context.Context, page, pageSize int) ([]models.SndlDemand, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.SndlDemand), args.Get(1).(int64), args.Error(2)
}

func newTestSndlService(repo *MockSndlDemandRepository, now time.Time) *sndlService {
	return &sndlService{repo: repo, now: func() time.Time { return now }}
}

func TestSndlCreate(t *testing.T) {
	repo := new(MockSndlDemandRepository)
	svc := newTestSndlService(repo, time.Now())

	repo.On("FindBlocking", mock.Anything, "user-1").Return(nil, apperrors.NotFoundf("no blocking demand"))
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *models.SndlDemand) bool {
		return d.UserID == "user-1" && d.Status == models.DemandPending && d.RequestReason == "thesis research"
	})).Return(nil)

	demand, err := svc.Create(context.Background(), student, "thesis research")

	assert.NoError(t, err)
	assert.Equal(t, models.DemandPending, demand.Status)
	repo.AssertExpectations(t)
}

func TestSndlCreate_BlockedByOpenDemand(t *testing.T) {
	repo := new(MockSndlDemandRepository)
	svc := newTestSndlService(repo, time.Now())

	blocking := &models.SndlDemand{ID: "demand-1", UserID: "user-1", Status: models.DemandApproved}
	repo.On("FindBlocking", mock.Anything, "user-1").Return(blocking, nil)

	_, err := svc.Create(context.Background(), student, "another try")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "Create")
}

func TestSndlProcess_Approve(t *testing.T) {
	repo := new(MockSndlDemandRepository)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestSndlService(repo, now)

	demand := &models.SndlDemand{ID: "demand-1", UserID: "user-1", Status: models.DemandPending}
	repo.On("GetByID", mock.Anything, "demand-1").Return(demand, nil)
	repo.On("Save", mock.Anything, demand).Return(nil)

	got, err := svc.Process(context.Background(), librarianActor, "demand-1", dto.ProcessSndlDemandDTO{
		Approved:     true,
		SndlEmail:    "student@sndl.dz",
		SndlPassword: "secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.DemandApproved, got.Status)
	assert.Equal(t, "lib-1", *got.ProcessedBy)
	repo.AssertExpectations(t)
}

func TestSndlProcess_ApproveWithoutCredentials(t *testing.T) {
	repo := new(MockSndlDemandRepository)
	svc := newTestSndlService(repo, time.Now())

	demand := &models.SndlDemand{ID: "demand-1", Status: models.DemandPending}
	repo.On("GetByID", mock.Anything, "demand-1").Return(demand, nil)

	_, err := svc.Process(context.Background(), librarianActor, "demand-1", dto.ProcessSndlDemandDTO{
		Approved: true,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.Equal(t, models.DemandPending, demand.Status)
	repo.AssertNotCalled(t, "Save")
}

func TestSndlProcess_AlreadyProcessed(t *testing.T) {
	repo := new(MockSndlDemandRepository)
	svc := newTestSndlService(repo, time.Now())

	demand := &models.SndlDemand{ID: "demand-1", Status: models.DemandRejected}
	repo.On("GetByID", mock.Anything, "demand-1").Return(demand, nil)

	_, err := svc.Process(context.Background(), librarianActor, "demand-1", dto.ProcessSndlDemandDTO{
		Approved: false,
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "Save")
}

func TestSndlProcess_RequiresLibrarian(t *testing.T) {
	repo := new(MockSndlDemandRepository)
	svc := newTestSndlService(repo, time.Now())

	_, err := svc.Process(context.Background(), student, "demand-1", dto.ProcessSndlDemandDTO{})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "GetByID")
}

func TestSndlMarkEmailSent(t *testing.T) {
	repo := new(MockSndlDemandRepository)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestSndlService(repo, now)

	demand := &models.SndlDemand{ID: "demand-1", Status: models.DemandApproved}
	repo.On("GetByID", mock.Anything, "demand-1").Return(demand, nil)
	repo.On("Save", mock.Anything, demand).Return(nil)

	got, err := svc.MarkEmailSent(context.Background(), librarianActor, "demand-1")

	assert.NoError(t, err)
	assert.True(t, got.EmailSent)
}

func TestSndlMarkEmailSent_NotApproved(t *testing.T) {
	repo := new(MockSndlDemandRepository)
	svc := newTestSndlService(repo, time.Now())

	demand := &models.SndlDemand{ID: "demand-1", Status: models.DemandPending}
	repo.On("GetByID", mock.Anything, "demand-1").Return(demand, nil)

	_, err := svc.MarkEmailSent(context.Background(), librarianActor, "demand-1")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "Save")
}
