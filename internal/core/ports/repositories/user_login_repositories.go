package repositories

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
)

// UserLoginReader defines read operations for login credentials.
type UserLoginReader interface {
	// FindUserLoginByUsername retrieves a login by its unique username.
	FindUserLoginByUsername(ctx context.Context, username string) (*domain.UserLogin, error)

	// UsernameExists reports whether the username is already taken.
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// UserLoginWriter defines write operations for login credentials.
type UserLoginWriter interface {
	// SaveUserLogin persists a new login and fills in the generated ID. A
	// storage-layer uniqueness conflict surfaces as ErrDuplicate.
	SaveUserLogin(ctx context.Context, login *domain.UserLogin) error
}

// UserLoginRepositoryFacade combines the login repository interfaces.
type UserLoginRepositoryFacade interface {
	UserLoginReader
	UserLoginWriter
}
