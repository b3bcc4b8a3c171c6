package services

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
	"github.com/traqbank/backoffice/internal/dto"
)

// PersonReaderSvc defines read operations for persons.
type PersonReaderSvc interface {
	// GetPersonByCode retrieves a person by primary key.
	GetPersonByCode(ctx context.Context, code int64) (*domain.Person, error)

	// ListPersons retrieves one page of persons matching the search term and
	// the total number of pages. Page numbering starts at 1; page size is
	// fixed at 10.
	ListPersons(ctx context.Context, search string, page int) ([]domain.Person, int, error)
}

// PersonWriterSvc defines write operations for persons.
type PersonWriterSvc interface {
	// CreatePerson creates a person; a duplicate ID number is rejected.
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error)

	// UpdatePerson edits a person; the duplicate ID number check excludes the
	// person itself.
	UpdatePerson(ctx context.Context, code int64, req dto.UpdatePersonRequest) (*domain.Person, error)

	// DeletePerson removes a person, allowed only when they own no accounts
	// or every account is Closed.
	DeletePerson(ctx context.Context, code int64) error
}

// PersonSvcFacade combines all person-related service interfaces.
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
}
