package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/middleware"
	"github.com/traqbank/backoffice/internal/utils"
)

type UserLoginService struct {
	userLoginRepo portsrepo.UserLoginRepositoryFacade
}

func NewUserLoginService(userLoginRepo portsrepo.UserLoginRepositoryFacade) *UserLoginService {
	return &UserLoginService{userLoginRepo: userLoginRepo}
}

var _ portssvc.UserLoginSvcFacade = (*UserLoginService)(nil)

// GetUserLoginByUsername retrieves a login record for password verification.
func (s *UserLoginService) GetUserLoginByUsername(ctx context.Context, username string) (*domain.UserLogin, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	login, err := s.userLoginRepo.FindUserLoginByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find login in repository", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return login, nil
}

// Signup creates a new login with a bcrypt password hash. A taken username is
// rejected up front and again at the storage layer in case of a race.
func (s *UserLoginService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.UserLogin, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	exists, err := s.userLoginRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		logger.Error("Failed to check username availability", slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: username %s already exists", apperrors.ErrDuplicate, req.Username)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	login := domain.UserLogin{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.userLoginRepo.SaveUserLogin(ctx, &login); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save login in repository", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Login created", slog.String("username", login.Username))
	return &login, nil
}
