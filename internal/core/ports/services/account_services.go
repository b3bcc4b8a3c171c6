package services

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
	"github.com/traqbank/backoffice/internal/dto"
)

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	// GetAccountByCode retrieves an account by primary key.
	GetAccountByCode(ctx context.Context, code int64) (*domain.Account, error)

	// ListAccountsByPerson retrieves the accounts of one person. The person
	// must exist.
	ListAccountsByPerson(ctx context.Context, personCode int64) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for accounts.
type AccountWriterSvc interface {
	// CreateAccount opens an account for a person. The starting balance is
	// forced to zero and the status to Open regardless of the request.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount edits an account's owner and number; the server-held
	// balance and status are preserved.
	UpdateAccount(ctx context.Context, code int64, req dto.UpdateAccountRequest) (*domain.Account, error)

	// ToggleAccountStatus flips Open to Closed (only at zero balance) or
	// Closed to Open (unconditionally) and returns the updated account.
	ToggleAccountStatus(ctx context.Context, code int64) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
