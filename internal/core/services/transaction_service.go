package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/middleware"
)

type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	// now is swappable in tests for the future-date check.
	now func() time.Time
}

func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		now:             time.Now,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// GetTransactionByCode retrieves a transaction by primary key.
func (s *TransactionService) GetTransactionByCode(ctx context.Context, code int64) (*domain.TransactionEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.transactionRepo.FindTransactionByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction in repository", slog.String("error", err.Error()), slog.Int64("transaction_code", code))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactionsByAccount retrieves an account's transactions, newest
// business date first. The account must exist.
func (s *TransactionService) ListTransactionsByAccount(ctx context.Context, accountCode int64) ([]domain.TransactionEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByCode(ctx, accountCode); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountCode)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()), slog.Int64("account_code", accountCode))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// validateEntry applies the capture rules shared by create and edit: a
// non-zero amount, a business date no later than today, and an existing open
// target account. The date check works at calendar-day granularity, so a
// transaction timed later today is still valid.
func (s *TransactionService) validateEntry(ctx context.Context, accountCode int64, transactionDate time.Time, amount decimal.Decimal) error {
	if amount.IsZero() {
		return fmt.Errorf("%w: amount must not be zero", apperrors.ErrValidation)
	}
	now := s.now()
	if startOfDay(transactionDate.In(now.Location())).After(startOfDay(now)) {
		return fmt.Errorf("%w: transaction date must not be after today", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: account %d does not exist", apperrors.ErrValidation, accountCode)
		}
		return err
	}
	if account.IsClosed() {
		return fmt.Errorf("%w: account %d is closed", apperrors.ErrValidation, accountCode)
	}
	return nil
}

// CreateTransaction captures a transaction against an open account. The row
// insert and the balance increment happen in one database transaction.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateEntry(ctx, req.AccountCode, req.TransactionDate, req.Amount); err != nil {
		return nil, err
	}

	txn := domain.TransactionEntry{
		AccountCode:     req.AccountCode,
		TransactionDate: req.TransactionDate,
		CaptureDate:     s.now(),
		Amount:          req.Amount,
		Description:     req.Description,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, &txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to save transaction in repository", slog.String("error", err.Error()), slog.Int64("account_code", req.AccountCode))
		}
		return nil, err
	}

	logger.Info("Transaction captured", slog.Int64("transaction_code", txn.Code), slog.Int64("account_code", txn.AccountCode))
	return &txn, nil
}

// UpdateTransaction edits a transaction. The same capture rules apply against
// the (possibly different) target account, the capture date is refreshed, and
// the amount delta is applied to the target account's balance.
func (s *TransactionService) UpdateTransaction(ctx context.Context, code int64, req dto.UpdateTransactionRequest) (*domain.TransactionEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.transactionRepo.FindTransactionByCode(ctx, code); err != nil {
		return nil, err
	}

	if err := s.validateEntry(ctx, req.AccountCode, req.TransactionDate, req.Amount); err != nil {
		return nil, err
	}

	txn := domain.TransactionEntry{
		Code:            code,
		AccountCode:     req.AccountCode,
		TransactionDate: req.TransactionDate,
		CaptureDate:     s.now(),
		Amount:          req.Amount,
		Description:     req.Description,
	}
	if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to update transaction in repository", slog.String("error", err.Error()), slog.Int64("transaction_code", code))
		}
		return nil, err
	}

	logger.Info("Transaction updated", slog.Int64("transaction_code", code))
	return &txn, nil
}
