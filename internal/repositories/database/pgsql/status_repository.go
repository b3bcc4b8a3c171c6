package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	"github.com/traqbank/backoffice/internal/models"
)

type PgxStatusRepository struct {
	BaseRepository
}

// newPgxStatusRepository creates a repository for the seeded status table.
func newPgxStatusRepository(pool PgxPool) portsrepo.StatusRepositoryFacade {
	return &PgxStatusRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StatusRepositoryFacade = (*PgxStatusRepository)(nil)

func toDomainStatus(m models.Status) domain.Status {
	return domain.Status{
		Code: domain.StatusCode(m.Code),
		Name: m.Name,
	}
}

// ListStatuses retrieves all statuses ordered by code.
func (r *PgxStatusRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	query := `
		SELECT code, name
		FROM status
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	defer rows.Close()

	statuses := make([]domain.Status, 0)
	for rows.Next() {
		var m models.Status
		if err := rows.Scan(&m.Code, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan status row: %w", err)
		}
		statuses = append(statuses, toDomainStatus(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status rows: %w", err)
	}
	return statuses, nil
}

// FindStatusByCode retrieves a single status.
func (r *PgxStatusRepository) FindStatusByCode(ctx context.Context, code domain.StatusCode) (*domain.Status, error) {
	query := `
		SELECT code, name
		FROM status
		WHERE code = $1;
	`
	var m models.Status
	if err := r.Pool.QueryRow(ctx, query, int16(code)).Scan(&m.Code, &m.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("status %d not found: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find status %d: %w", code, err)
	}
	status := toDomainStatus(m)
	return &status, nil
}
