package services

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
	"github.com/traqbank/backoffice/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransactionByCode retrieves a transaction by primary key.
	GetTransactionByCode(ctx context.Context, code int64) (*domain.TransactionEntry, error)

	// ListTransactionsByAccount retrieves an account's transactions ordered by
	// transaction date descending. The account must exist.
	ListTransactionsByAccount(ctx context.Context, accountCode int64) ([]domain.TransactionEntry, error)
}

// TransactionWriterSvc defines write operations for transactions. There is no
// delete operation.
type TransactionWriterSvc interface {
	// CreateTransaction captures a transaction against an Open account and
	// applies its amount to the account balance atomically.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionEntry, error)

	// UpdateTransaction edits a transaction, revalidates against the (possibly
	// different) target account, applies the amount delta to that account's
	// balance and refreshes the capture date.
	UpdateTransaction(ctx context.Context, code int64, req dto.UpdateTransactionRequest) (*domain.TransactionEntry, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
