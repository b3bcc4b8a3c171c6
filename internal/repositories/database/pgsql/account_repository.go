package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	"github.com/traqbank/backoffice/internal/models"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool PgxPool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:               m.Code,
		PersonCode:         m.PersonCode,
		AccountNumber:      m.AccountNumber,
		OutstandingBalance: m.OutstandingBalance,
		StatusCode:         domain.StatusCode(m.StatusCode),
	}
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(&m.Code, &m.PersonCode, &m.AccountNumber, &m.OutstandingBalance, &m.StatusCode)
	return m, err
}

// SaveAccount inserts a new account and fills in the generated code.
// New accounts always start open with a zero balance.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (person_code, account_number, outstanding_balance, status_code)
		VALUES ($1, $2, 0, $3)
		RETURNING code;
	`
	err := r.Pool.QueryRow(ctx, query,
		account.PersonCode,
		account.AccountNumber,
		int16(domain.StatusOpen),
	).Scan(&account.Code)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", account.AccountNumber, err)
	}
	account.OutstandingBalance = decimal.Zero
	account.StatusCode = domain.StatusOpen
	return nil
}

// FindAccountByCode retrieves a specific account by its primary key.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code int64) (*domain.Account, error) {
	query := `
		SELECT code, person_code, account_number, outstanding_balance, status_code
		FROM accounts
		WHERE code = $1;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %d not found: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account %d: %w", code, err)
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

// ListAccountsByPerson retrieves all accounts belonging to a person, ordered
// by account number.
func (r *PgxAccountRepository) ListAccountsByPerson(ctx context.Context, personCode int64) ([]domain.Account, error) {
	query := `
		SELECT code, person_code, account_number, outstanding_balance, status_code
		FROM accounts
		WHERE person_code = $1
		ORDER BY account_number;
	`
	rows, err := r.Pool.Query(ctx, query, personCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for person %d: %w", personCode, err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.Code, &m.PersonCode, &m.AccountNumber, &m.OutstandingBalance, &m.StatusCode); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// AccountNumberExists reports whether another account already uses the given
// account number. excludeCode is ignored when zero.
func (r *PgxAccountRepository) AccountNumberExists(ctx context.Context, accountNumber string, excludeCode int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM accounts WHERE account_number = $1 AND code <> $2
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, accountNumber, excludeCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account number %s: %w", accountNumber, err)
	}
	return exists, nil
}

// UpdateAccount updates an account's owner and account number. Balance and
// status columns are deliberately not part of the statement.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET person_code = $2, account_number = $3
		WHERE code = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, account.Code, account.PersonCode, account.AccountNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
		}
		return fmt.Errorf("failed to update account %d: %w", account.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found for update: %w", account.Code, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateAccountStatus moves an account to the given status. When
// onlyIfZeroBalance is set the balance check runs inside the UPDATE itself,
// so a concurrent posting cannot slip between check and write.
func (r *PgxAccountRepository) UpdateAccountStatus(ctx context.Context, code int64, status domain.StatusCode, onlyIfZeroBalance bool) error {
	query := `
		UPDATE accounts
		SET status_code = $2
		WHERE code = $1;
	`
	if onlyIfZeroBalance {
		query = `
			UPDATE accounts
			SET status_code = $2
			WHERE code = $1 AND outstanding_balance = 0;
		`
	}
	tag, err := r.Pool.Exec(ctx, query, code, int16(status))
	if err != nil {
		return fmt.Errorf("failed to update status of account %d: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing account from a guarded miss.
		if _, findErr := r.FindAccountByCode(ctx, code); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: account %d has a non-zero outstanding balance", apperrors.ErrValidation, code)
	}
	return nil
}

// FindAccountByCodeForUpdate selects an account within the given transaction
// and locks its row until the transaction ends.
func (r *PgxAccountRepository) FindAccountByCodeForUpdate(ctx context.Context, tx pgx.Tx, code int64) (*domain.Account, error) {
	query := `
		SELECT code, person_code, account_number, outstanding_balance, status_code
		FROM accounts
		WHERE code = $1
		FOR UPDATE;
	`
	m, err := scanAccount(tx.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %d not found: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock account %d: %w", code, err)
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

// ApplyBalanceDeltaInTx adds delta to the account's outstanding balance
// within the given transaction. Callers must hold the row lock.
func (r *PgxAccountRepository) ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, code int64, delta decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET outstanding_balance = outstanding_balance + $2
		WHERE code = $1;
	`
	tag, err := tx.Exec(ctx, query, code, delta)
	if err != nil {
		return fmt.Errorf("failed to apply balance delta to account %d: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found for balance update: %w", code, apperrors.ErrNotFound)
	}
	return nil
}
