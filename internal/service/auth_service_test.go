package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/config"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/middleware/auth"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, tokenString string) (*models.RefreshToken, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func newTestAuthService(userRepo *MockUserRepository, tokenRepo *MockRefreshTokenRepository) AuthService {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	return NewAuthService(userRepo, tokenRepo, cfg)
}

func TestAuthRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	userRepo.On("FindByEmail", mock.Anything, "new@estin.dz").Return(nil, apperrors.NotFoundf("not found"))
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@estin.dz" && u.Role == models.RoleStudent && u.Password != "password123"
	})).Return(nil)

	user, err := svc.Register(context.Background(), "New Student", "new@estin.dz", "password123")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NoError(t, auth.VerifyPassword(user.Password, "password123"))
	userRepo.AssertExpectations(t)
}

func TestAuthRegister_EmailInUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	existing := &models.User{ID: "user-1", Email: "taken@estin.dz"}
	userRepo.On("FindByEmail", mock.Anything, "taken@estin.dz").Return(existing, nil)

	_, err := svc.Register(context.Background(), "Someone", "taken@estin.dz", "password123")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	userRepo.AssertNotCalled(t, "Create")
}

func TestAuthLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	hashed, err := auth.HashPassword("password123")
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Name: "Student", Email: "s@estin.dz", Password: hashed, Role: models.RoleStudent}

	userRepo.On("FindByEmail", mock.Anything, "s@estin.dz").Return(user, nil)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	access, refresh, got, err := svc.Login(context.Background(), "s@estin.dz", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, user, got)

	// The issued access token round-trips through validation.
	claims, err := svc.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	hashed, _ := auth.HashPassword("password123")
	user := &models.User{ID: "user-1", Email: "s@estin.dz", Password: hashed}
	userRepo.On("FindByEmail", mock.Anything, "s@estin.dz").Return(user, nil)

	_, _, _, err := svc.Login(context.Background(), "s@estin.dz", "wrong")

	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	userRepo.On("FindByEmail", mock.Anything, "nobody@estin.dz").Return(nil, apperrors.NotFoundf("not found"))

	_, _, _, err := svc.Login(context.Background(), "nobody@estin.dz", "password123")

	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthRefreshAccessToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	stored := &models.RefreshToken{
		ID:        "token-1",
		UserID:    "user-1",
		Token:     "opaque-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &models.User{ID: "user-1", Name: "Student", Role: models.RoleStudent}

	tokenRepo.On("FindByToken", mock.Anything, "opaque-token").Return(stored, nil)
	userRepo.On("FindByID", mock.Anything, "user-1").Return(user, nil)

	access, err := svc.RefreshAccessToken(context.Background(), "opaque-token")

	assert.NoError(t, err)
	claims, err := svc.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestAuthRefreshAccessToken_Expired(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	stored := &models.RefreshToken{
		ID:        "token-1",
		UserID:    "user-1",
		Token:     "opaque-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	tokenRepo.On("FindByToken", mock.Anything, "opaque-token").Return(stored, nil)
	tokenRepo.On("Delete", mock.Anything, "token-1").Return(nil)

	_, err := svc.RefreshAccessToken(context.Background(), "opaque-token")

	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	tokenRepo.AssertCalled(t, "Delete", mock.Anything, "token-1")
}

func TestAuthRefreshAccessToken_Revoked(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	stored := &models.RefreshToken{
		ID:        "token-1",
		UserID:    "user-1",
		Token:     "opaque-token",
		ExpiresAt: time.Now().Add(time.Hour),
		Revoked:   true,
	}
	tokenRepo.On("FindByToken", mock.Anything, "opaque-token").Return(stored, nil)

	_, err := svc.RefreshAccessToken(context.Background(), "opaque-token")

	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	userRepo.AssertNotCalled(t, "FindByID")
}

func TestValidateToken_Garbage(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	_, err := svc.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
