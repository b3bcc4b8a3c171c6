package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/traqbank/backoffice/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByCode retrieves a specific account by primary key.
	FindAccountByCode(ctx context.Context, code int64) (*domain.Account, error)

	// ListAccountsByPerson retrieves all accounts belonging to a person.
	ListAccountsByPerson(ctx context.Context, personCode int64) ([]domain.Account, error)

	// AccountNumberExists reports whether another account already uses the
	// given account number. excludeCode is ignored when zero.
	AccountNumberExists(ctx context.Context, accountNumber string, excludeCode int64) (bool, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account and fills in the generated code.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// UpdateAccount updates an account's owner and account number. Balance and
	// status are never written through this method.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountStatus moves an account to the given status. When
	// onlyIfZeroBalance is set the update is guarded in SQL so it cannot race
	// with a concurrent balance change; a guarded miss returns ErrValidation.
	UpdateAccountStatus(ctx context.Context, code int64, status domain.StatusCode, onlyIfZeroBalance bool) error
}

// AccountTransactionSupport defines operations used by the transaction
// repository inside a database transaction.
type AccountTransactionSupport interface {
	// FindAccountByCodeForUpdate selects an account and locks its row.
	FindAccountByCodeForUpdate(ctx context.Context, tx pgx.Tx, code int64) (*domain.Account, error)

	// ApplyBalanceDeltaInTx adds delta to the account's outstanding balance
	// within the given transaction.
	ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, code int64, delta decimal.Decimal) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
