package service

import (
	"context"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/shared"
)

// SubmissionService records contact messages and ideas. Append-only.
type SubmissionService interface {
	SubmitContact(ctx context.Context, actor shared.AuthContext, contact *models.Contact) error
	SubmitIdea(ctx context.Context, actor shared.AuthContext, idea *models.Idea) error
	ListContacts(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.Contact, int64, error)
	ListIdeas(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.Idea, int64, error)
}

type submissionService struct {
	repo repository.SubmissionRepository
}

func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo}
}

func (s *submissionService) SubmitContact(ctx context.Context, actor shared.AuthContext, contact *models.Contact) error {
	if actor.UserID != "" {
		contact.UserID = &actor.UserID
	}
	return s.repo.CreateContact(ctx, contact)
}

func (s *submissionService) SubmitIdea(ctx context.Context, actor shared.AuthContext, idea *models.Idea) error {
	if actor.UserID != "" {
		idea.UserID = &actor.UserID
	}
	return s.repo.CreateIdea(ctx, idea)
}

func (s *submissionService) ListContacts(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.Contact, int64, error) {
	if !actor.IsLibrarian() {
		return nil, 0, apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.ListContacts(ctx, page, pageSize)
}

func (s *submissionService) ListIdeas(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.Idea, int64, error) {
	if !actor.IsLibrarian() {
		return nil, 0, apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.ListIdeas(ctx, page, pageSize)
}
