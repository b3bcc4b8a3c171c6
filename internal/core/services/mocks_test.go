package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/traqbank/backoffice/internal/core/domain"
	portsrepo "github.com/traqbank/backoffice/internal/core/ports/repositories"
)

// --- Mock PersonRepository ---

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindPersonByCode(ctx context.Context, code int64) (*domain.Person, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) ListPersons(ctx context.Context, search string, limit int, offset int) ([]domain.Person, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Person), args.Get(1).(int64), args.Error(2)
}

func (m *MockPersonRepository) IDNumberExists(ctx context.Context, idNumber string, excludeCode int64) (bool, error) {
	args := m.Called(ctx, idNumber, excludeCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockPersonRepository) SavePerson(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) DeletePerson(ctx context.Context, code int64) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

var _ portsrepo.PersonRepositoryFacade = (*MockPersonRepository)(nil)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code int64) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByPerson(ctx context.Context, personCode int64) ([]domain.Account, error) {
	args := m.Called(ctx, personCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) AccountNumberExists(ctx context.Context, accountNumber string, excludeCode int64) (bool, error) {
	args := m.Called(ctx, accountNumber, excludeCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountStatus(ctx context.Context, code int64, status domain.StatusCode, onlyIfZeroBalance bool) error {
	args := m.Called(ctx, code, status, onlyIfZeroBalance)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByCodeForUpdate(ctx context.Context, tx pgx.Tx, code int64) (*domain.Account, error) {
	args := m.Called(ctx, tx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, code int64, delta decimal.Decimal) error {
	args := m.Called(ctx, tx, code, delta)
	return args.Error(0)
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByCode(ctx context.Context, code int64) (*domain.TransactionEntry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionEntry), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountCode int64) ([]domain.TransactionEntry, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionEntry), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.TransactionEntry) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.TransactionEntry) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock StatusRepository ---

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Status), args.Error(1)
}

func (m *MockStatusRepository) FindStatusByCode(ctx context.Context, code domain.StatusCode) (*domain.Status, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}

var _ portsrepo.StatusRepositoryFacade = (*MockStatusRepository)(nil)

// --- Mock UserLoginRepository ---

type MockUserLoginRepository struct {
	mock.Mock
}

func (m *MockUserLoginRepository) FindUserLoginByUsername(ctx context.Context, username string) (*domain.UserLogin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserLogin), args.Error(1)
}

func (m *MockUserLoginRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserLoginRepository) SaveUserLogin(ctx context.Context, login *domain.UserLogin) error {
	args := m.Called(ctx, login)
	return args.Error(0)
}

var _ portsrepo.UserLoginRepositoryFacade = (*MockUserLoginRepository)(nil)
