package repositories

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByCode retrieves a specific transaction by primary key.
	FindTransactionByCode(ctx context.Context, code int64) (*domain.TransactionEntry, error)

	// ListTransactionsByAccount retrieves all transactions for an account
	// ordered by transaction date descending.
	ListTransactionsByAccount(ctx context.Context, accountCode int64) ([]domain.TransactionEntry, error)
}

// TransactionWriter defines write operations for transaction data. Both
// methods run the row write and the account balance maintenance inside one
// database transaction with the account row locked.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction and increments the target
	// account's balance by its amount. The target account must be Open; a
	// Closed account observed under lock returns ErrValidation.
	SaveTransaction(ctx context.Context, txn *domain.TransactionEntry) error

	// UpdateTransaction rewrites the transaction and applies the amount delta
	// (new minus stored) to the target account's balance. The previous amount
	// is re-read under lock so concurrent edits cannot lose updates.
	UpdateTransaction(ctx context.Context, txn domain.TransactionEntry) error
}

// TransactionRepositoryFacade combines all transaction-related repository
// interfaces. There is deliberately no delete operation.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
