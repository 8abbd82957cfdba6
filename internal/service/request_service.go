package service

import (
	"context"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/shared"
)

// RequestService handles user-suggested acquisitions.
type RequestService interface {
	Create(ctx context.Context, actor shared.AuthContext, request *models.BookRequest) error
	UpdateStatus(ctx context.Context, actor shared.AuthContext, id int64, status string) error
	ListMine(ctx context.Context, actor shared.AuthContext) ([]models.BookRequest, error)
	ListAll(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.BookRequest, int64, error)
}

type requestService struct {
	repo repository.BookRequestRepository
}

func NewRequestService(repo repository.BookRequestRepository) RequestService {
	return &requestService{repo: repo}
}

func (s *requestService) Create(ctx context.Context, actor shared.AuthContext, request *models.BookRequest) error {
	request.UserID = actor.UserID
	request.Status = models.RequestPending
	return s.repo.Create(ctx, request)
}

func (s *requestService) UpdateStatus(ctx context.Context, actor shared.AuthContext, id int64, status string) error {
	if !actor.IsLibrarian() {
		return apperrors.Forbiddenf("librarian role required")
	}
	if !models.ValidRequestStatus(status) {
		return apperrors.InvalidArgumentf("unknown status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *requestService) ListMine(ctx context.Context, actor shared.AuthContext) ([]models.BookRequest, error) {
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *requestService) ListAll(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.BookRequest, int64, error) {
	if !actor.IsLibrarian() {
		return nil, 0, apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.ListAll(ctx, page, pageSize)
}
