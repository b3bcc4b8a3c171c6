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

type PgxUserLoginRepository struct {
	BaseRepository
}

// newPgxUserLoginRepository creates a repository for login credentials.
func newPgxUserLoginRepository(pool PgxPool) portsrepo.UserLoginRepositoryFacade {
	return &PgxUserLoginRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserLoginRepositoryFacade = (*PgxUserLoginRepository)(nil)

func toDomainUserLogin(m models.UserLogin) domain.UserLogin {
	return domain.UserLogin{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
	}
}

// FindUserLoginByUsername retrieves a login by its unique username.
func (r *PgxUserLoginRepository) FindUserLoginByUsername(ctx context.Context, username string) (*domain.UserLogin, error) {
	query := `
		SELECT id, username, password_hash
		FROM user_logins
		WHERE username = $1;
	`
	var m models.UserLogin
	if err := r.Pool.QueryRow(ctx, query, username).Scan(&m.ID, &m.Username, &m.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("login %s not found: %w", username, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find login %s: %w", username, err)
	}
	login := toDomainUserLogin(m)
	return &login, nil
}

// UsernameExists reports whether the username is already taken.
func (r *PgxUserLoginRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_logins WHERE username = $1
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username %s: %w", username, err)
	}
	return exists, nil
}

// SaveUserLogin persists a new login and fills in the generated ID.
func (r *PgxUserLoginRepository) SaveUserLogin(ctx context.Context, login *domain.UserLogin) error {
	query := `
		INSERT INTO user_logins (username, password_hash)
		VALUES ($1, $2)
		RETURNING id;
	`
	if err := r.Pool.QueryRow(ctx, query, login.Username, login.PasswordHash).Scan(&login.ID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s already exists", apperrors.ErrDuplicate, login.Username)
		}
		return fmt.Errorf("failed to save login %s: %w", login.Username, err)
	}
	return nil
}
