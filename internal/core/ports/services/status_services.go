package services

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
)

// StatusSvcFacade exposes the seeded status enumeration. Read-only.
type StatusSvcFacade interface {
	// ListStatuses retrieves all statuses ordered by code.
	ListStatuses(ctx context.Context) ([]domain.Status, error)
}
