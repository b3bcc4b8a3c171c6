package repositories

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
)

// PersonReader defines read operations for person data.
type PersonReader interface {
	// FindPersonByCode retrieves a specific person by primary key.
	FindPersonByCode(ctx context.Context, code int64) (*domain.Person, error)

	// ListPersons retrieves a page of persons whose ID number or surname
	// contains the search term, ordered by surname then name. It also returns
	// the total number of matching rows for pagination.
	ListPersons(ctx context.Context, search string, limit int, offset int) ([]domain.Person, int64, error)

	// IDNumberExists reports whether another person already uses the given ID
	// number. excludeCode is ignored when zero.
	IDNumberExists(ctx context.Context, idNumber string, excludeCode int64) (bool, error)
}

// PersonWriter defines write operations for person data.
type PersonWriter interface {
	// SavePerson persists a new person and fills in the generated code.
	SavePerson(ctx context.Context, person *domain.Person) error

	// UpdatePerson updates an existing person's details.
	UpdatePerson(ctx context.Context, person domain.Person) error

	// DeletePerson removes a person. The caller is responsible for the
	// business rule that only account-less or fully closed persons may go.
	DeletePerson(ctx context.Context, code int64) error
}

// PersonRepositoryFacade combines all person-related repository interfaces.
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
