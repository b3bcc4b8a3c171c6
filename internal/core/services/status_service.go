package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/middleware"
)

type StatusService struct {
	statusRepo portsrepo.StatusRepositoryFacade
}

func NewStatusService(statusRepo portsrepo.StatusRepositoryFacade) *StatusService {
	return &StatusService{statusRepo: statusRepo}
}

var _ portssvc.StatusSvcFacade = (*StatusService)(nil)

// ListStatuses retrieves the seeded status enumeration.
func (s *StatusService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	statuses, err := s.statusRepo.ListStatuses(ctx)
	if err != nil {
		logger.Error("Failed to list statuses from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}
