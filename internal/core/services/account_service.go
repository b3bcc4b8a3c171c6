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
)

type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	personRepo  portsrepo.PersonRepositoryFacade
}

func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, personRepo portsrepo.PersonRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: accountRepo, personRepo: personRepo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// GetAccountByCode retrieves an account by primary key.
func (s *AccountService) GetAccountByCode(ctx context.Context, code int64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account in repository", slog.String("error", err.Error()), slog.Int64("account_code", code))
		}
		return nil, err
	}
	return account, nil
}

// ListAccountsByPerson retrieves the accounts of one person. The person must
// exist.
func (s *AccountService) ListAccountsByPerson(ctx context.Context, personCode int64) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.personRepo.FindPersonByCode(ctx, personCode); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByPerson(ctx, personCode)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()), slog.Int64("person_code", personCode))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// CreateAccount opens an account for a person. Any balance or status supplied
// by the client is discarded; new accounts start open at zero.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.personRepo.FindPersonByCode(ctx, req.PersonCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: person %d does not exist", apperrors.ErrValidation, req.PersonCode)
		}
		return nil, err
	}

	exists, err := s.accountRepo.AccountNumberExists(ctx, req.AccountNumber, 0)
	if err != nil {
		logger.Error("Failed to check account number uniqueness", slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, req.AccountNumber)
	}

	account := domain.Account{
		PersonCode:    req.PersonCode,
		AccountNumber: req.AccountNumber,
	}
	if err := s.accountRepo.SaveAccount(ctx, &account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created", slog.Int64("account_code", account.Code), slog.Int64("person_code", account.PersonCode))
	return &account, nil
}

// UpdateAccount edits an account's owner and number. The stored balance and
// status are never touched; values in the request are ignored.
func (s *AccountService) UpdateAccount(ctx context.Context, code int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if _, err := s.personRepo.FindPersonByCode(ctx, req.PersonCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: person %d does not exist", apperrors.ErrValidation, req.PersonCode)
		}
		return nil, err
	}

	exists, err := s.accountRepo.AccountNumberExists(ctx, req.AccountNumber, code)
	if err != nil {
		logger.Error("Failed to check account number uniqueness", slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, req.AccountNumber)
	}

	account.PersonCode = req.PersonCode
	account.AccountNumber = req.AccountNumber
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.Int64("account_code", code))
		return nil, err
	}

	logger.Info("Account updated", slog.Int64("account_code", code))
	return account, nil
}

// ToggleAccountStatus flips an open account to closed or a closed account to
// open. Closing requires a zero outstanding balance; the check runs inside the
// status update so a concurrent posting cannot close the gap.
func (s *AccountService) ToggleAccountStatus(ctx context.Context, code int64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	target := domain.StatusClosed
	onlyIfZeroBalance := true
	if account.IsClosed() {
		target = domain.StatusOpen
		onlyIfZeroBalance = false
	}

	if err := s.accountRepo.UpdateAccountStatus(ctx, code, target, onlyIfZeroBalance); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to update account status in repository", slog.String("error", err.Error()), slog.Int64("account_code", code))
		}
		return nil, err
	}

	logger.Info("Account status toggled", slog.Int64("account_code", code), slog.String("status", target.String()))
	return s.accountRepo.FindAccountByCode(ctx, code)
}
