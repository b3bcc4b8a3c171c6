package services

import (
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the application services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Person:      NewPersonService(repos.PersonRepo),
		Account:     NewAccountService(repos.AccountRepo, repos.PersonRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo),
		Status:      NewStatusService(repos.StatusRepo),
		UserLogin:   NewUserLoginService(repos.UserLoginRepo),
	}
}
