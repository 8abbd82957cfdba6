package service

import (
	"context"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/shared"
)

// UserService covers the dashboard user administration. Self-protection: a
// librarian can neither delete their own account nor change their own role.
type UserService interface {
	List(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.User, int64, error)
	ChangeRole(ctx context.Context, actor shared.AuthContext, userID, role string) error
	Delete(ctx context.Context, actor shared.AuthContext, userID string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context, actor shared.AuthContext, page, pageSize int) ([]models.User, int64, error) {
	if !actor.IsLibrarian() {
		return nil, 0, apperrors.Forbiddenf("librarian role required")
	}
	return s.repo.List(ctx, page, pageSize)
}

func (s *userService) ChangeRole(ctx context.Context, actor shared.AuthContext, userID, role string) error {
	if !actor.IsLibrarian() {
		return apperrors.Forbiddenf("librarian role required")
	}
	if actor.Is(userID) {
		return apperrors.Forbiddenf("cannot change your own role")
	}
	if !models.ValidRole(role) {
		return apperrors.InvalidArgumentf("unknown role %q", role)
	}
	return s.repo.UpdateRole(ctx, userID, role)
}

func (s *userService) Delete(ctx context.Context, actor shared.AuthContext, userID string) error {
	if !actor.IsLibrarian() {
		return apperrors.Forbiddenf("librarian role required")
	}
	if actor.Is(userID) {
		return apperrors.Forbiddenf("cannot delete your own account")
	}
	return s.repo.Delete(ctx, userID)
}
