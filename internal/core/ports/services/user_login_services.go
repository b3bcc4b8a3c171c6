package services

import (
	"context"

	"github.com/traqbank/backoffice/internal/core/domain"
	"github.com/traqbank/backoffice/internal/dto"
)

// UserLoginSvcFacade manages login credentials for session establishment.
type UserLoginSvcFacade interface {
	// GetUserLoginByUsername retrieves a login record for password
	// verification.
	GetUserLoginByUsername(ctx context.Context, username string) (*domain.UserLogin, error)

	// Signup creates a new login with a hashed password. Duplicate usernames
	// are rejected, including conflicts only detected by the storage layer.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.UserLogin, error)
}
