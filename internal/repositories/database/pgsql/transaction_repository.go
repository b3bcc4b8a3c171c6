package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	"github.com/traqbank/backoffice/internal/middleware"
	"github.com/traqbank/backoffice/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountSupport portsrepo.AccountTransactionSupport
}

// newPgxTransactionRepository creates a new repository for transaction data.
// Balance maintenance goes through accountSupport so the locking lives in one
// place.
func newPgxTransactionRepository(pool PgxPool, accountSupport portsrepo.AccountTransactionSupport) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountSupport: accountSupport,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.TransactionEntry) domain.TransactionEntry {
	return domain.TransactionEntry{
		Code:            m.Code,
		AccountCode:     m.AccountCode,
		TransactionDate: m.TransactionDate,
		CaptureDate:     m.CaptureDate,
		Amount:          m.Amount,
		Description:     m.Description,
	}
}

// FindTransactionByCode retrieves a specific transaction by its primary key.
func (r *PgxTransactionRepository) FindTransactionByCode(ctx context.Context, code int64) (*domain.TransactionEntry, error) {
	query := `
		SELECT code, account_code, transaction_date, capture_date, amount, description
		FROM transactions
		WHERE code = $1;
	`
	var m models.TransactionEntry
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.Code, &m.AccountCode, &m.TransactionDate, &m.CaptureDate, &m.Amount, &m.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %d not found: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", code, err)
	}
	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByAccount retrieves all transactions for an account, most
// recent first.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountCode int64) ([]domain.TransactionEntry, error) {
	query := `
		SELECT code, account_code, transaction_date, capture_date, amount, description
		FROM transactions
		WHERE account_code = $1
		ORDER BY transaction_date DESC, code DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %d: %w", accountCode, err)
	}
	defer rows.Close()

	transactions := make([]domain.TransactionEntry, 0)
	for rows.Next() {
		var m models.TransactionEntry
		if err := rows.Scan(&m.Code, &m.AccountCode, &m.TransactionDate, &m.CaptureDate, &m.Amount, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}

// SaveTransaction inserts the transaction and increments the target account's
// outstanding balance by its amount, all within one database transaction. The
// account row is locked first so the closed-status check and the balance
// write cannot race with a concurrent close or posting.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.TransactionEntry) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("rollback failed after transaction save", "error", rbErr)
		}
	}()

	account, err := r.accountSupport.FindAccountByCodeForUpdate(ctx, tx, txn.AccountCode)
	if err != nil {
		return err
	}
	if account.IsClosed() {
		return fmt.Errorf("%w: account %d is closed", apperrors.ErrValidation, account.Code)
	}

	insert := `
		INSERT INTO transactions (account_code, transaction_date, capture_date, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING code;
	`
	err = tx.QueryRow(ctx, insert,
		txn.AccountCode,
		txn.TransactionDate,
		txn.CaptureDate,
		txn.Amount,
		txn.Description,
	).Scan(&txn.Code)
	if err != nil {
		return fmt.Errorf("failed to save transaction for account %d: %w", txn.AccountCode, err)
	}

	if err := r.accountSupport.ApplyBalanceDeltaInTx(ctx, tx, txn.AccountCode, txn.Amount); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction rewrites the transaction and applies the amount delta to
// the target account. The stored row is re-read with its lock held, so the
// delta is always computed against the amount actually on disk. When the edit
// moves the transaction to another account, the delta lands on the new
// account.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.TransactionEntry) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("rollback failed after transaction update", "error", rbErr)
		}
	}()

	var stored models.TransactionEntry
	lockRow := `
		SELECT code, account_code, amount
		FROM transactions
		WHERE code = $1
		FOR UPDATE;
	`
	err = tx.QueryRow(ctx, lockRow, txn.Code).Scan(&stored.Code, &stored.AccountCode, &stored.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("transaction %d not found: %w", txn.Code, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to lock transaction %d: %w", txn.Code, err)
	}

	account, err := r.accountSupport.FindAccountByCodeForUpdate(ctx, tx, txn.AccountCode)
	if err != nil {
		return err
	}
	if account.IsClosed() {
		return fmt.Errorf("%w: account %d is closed", apperrors.ErrValidation, account.Code)
	}

	update := `
		UPDATE transactions
		SET account_code = $2, transaction_date = $3, capture_date = $4, amount = $5, description = $6
		WHERE code = $1;
	`
	if _, err := tx.Exec(ctx, update,
		txn.Code,
		txn.AccountCode,
		txn.TransactionDate,
		txn.CaptureDate,
		txn.Amount,
		txn.Description,
	); err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", txn.Code, err)
	}

	delta := txn.Amount.Sub(stored.Amount)
	if !delta.IsZero() {
		if err := r.accountSupport.ApplyBalanceDeltaInTx(ctx, tx, txn.AccountCode, delta); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}
