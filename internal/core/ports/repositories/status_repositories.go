package repositories

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
)

// StatusReader defines read operations for the seeded status enumeration.
// There is no writer; the table is fixed at migration time.
type StatusReader interface {
	// ListStatuses retrieves all statuses ordered by code.
	ListStatuses(ctx context.Context) ([]domain.Status, error)

	// FindStatusByCode retrieves a single status.
	FindStatusByCode(ctx context.Context, code domain.StatusCode) (*domain.Status, error)
}

// StatusRepositoryFacade is the full status repository surface.
type StatusRepositoryFacade interface {
	StatusReader
}
