package service

import (
	"context"
	"errors"
	"time"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/shared"
)

// SndlService runs the SNDL demand workflow: a user files at most one demand
// in {PENDING, APPROVED} at a time, a librarian processes a pending demand
// exactly once, and credential delivery is recorded idempotently.
type SndlService interface {
	Create(ctx context.Context, actor shared.AuthContext, requestReason string) (*models.SndlDemand, error)
	Process(ctx context.Context, actor shared.AuthContext, demandID string, in dto.ProcessSndlDemandDTO) (*models.SndlDemand, error)
	MarkEmailSent(ctx context.Context, actor shared.AuthContext, demandID string) (*models.SndlDemand, error)
	ListMine(ctx context.Context, actor shared.AuthContext) ([]models.SndlDemand, error)
	ListAll(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.SndlDemand, int64, error)
}

type sndlService struct {
	repo repository.SndlDemandRepository
	now  func() time.Time
}

func NewSndlService(repo repository.SndlDemandRepository) SndlService {
	return &sndlService{repo: repo, now: time.Now}
}

func (s *sndlService) Create(ctx context.Context, actor shared.AuthContext, requestReason string) (*models.SndlDemand, error) {
	blocking, err := s.repo.FindBlocking(ctx, actor.UserID)
	if err == nil {
		return nil, apperrors.Conflictf("a %s demand already exists for this user", blocking.Status)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	demand := &models.SndlDemand{
		UserID:        actor.UserID,
		RequestReason: requestReason,
		Status:        models.DemandPending,
	}
	if err := s.repo.Create(ctx, demand); err != nil {
		return nil, err
	}
	return demand, nil
}

func (s *sndlService) Process(ctx context.Context, actor shared.AuthContext, demandID string, in dto.ProcessSndlDemandDTO) (*models.SndlDemand, error) {
	if !actor.IsLibrarian() {
		return nil, apperrors.Forbiddenf("librarian role required")
	}

	demand, err := s.repo.GetByID(ctx, demandID)
	if err != nil {
		return nil, err
	}

	if in.Approved {
		err = demand.Approve(in.SndlEmail, in.SndlPassword, in.AdminNotes, actor.UserID, s.now())
	} else {
		err = demand.Reject(in.AdminNotes, actor.UserID, s.now())
	}
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDemandProcessed):
			return nil, apperrors.Conflictf("demand %s is already %s", demandID, demand.Status)
		case errors.Is(err, models.ErrMissingCredentials):
			return nil, apperrors.InvalidArgumentf("approval requires sndl_email and sndl_password together")
		}
		return nil, err
	}

	if err := s.repo.Save(ctx, demand); err != nil {
		return nil, err
	}
	return demand, nil
}

func (s *sndlService) MarkEmailSent(ctx context.Context, actor shared.AuthContext, demandID string) (*models.SndlDemand, error) {
	if !actor.IsLibrarian() {
		return nil, apperrors.Forbiddenf("librarian role required")
	}

	demand, err := s.repo.GetByID(ctx, demandID)
	if err != nil {
		return nil, err
	}
	if err := demand.MarkEmailSent(s.now()); err != nil {
		return nil, apperrors.Conflictf("demand %s is not approved", demandID)
	}
	if err := s.repo.Save(ctx, demand); err != nil {
		return nil, err
	}
	return demand, nil
}

func (s *sndlService) ListMine(ctx context.Context, actor shared.AuthContext) ([]models.SndlDemand, error) {
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *sndlService) ListAll(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.SndlDemand, int64, error) {
	if !actor.IsLibrarian() {
		return nil, 0, apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.ListAll(ctx, page, pageSize)
}
