package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	personRepo := newPgxPersonRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	statusRepo := newPgxStatusRepository(dbPool)
	userLoginRepo := newPgxUserLoginRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PersonRepo:      personRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		StatusRepo:      statusRepo,
		UserLoginRepo:   userLoginRepo,
	}
}
