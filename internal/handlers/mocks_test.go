package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/traqbank/backoffice/internal/core/domain"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
)

// --- Mock PersonService ---

type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) GetPersonByCode(ctx context.Context, code int64) (*domain.Person, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonService) ListPersons(ctx context.Context, search string, page int) ([]domain.Person, int, error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Person), args.Int(1), args.Error(2)
}

func (m *MockPersonService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonService) UpdatePerson(ctx context.Context, code int64, req dto.UpdatePersonRequest) (*domain.Person, error) {
	args := m.Called(ctx, code, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonService) DeletePerson(ctx context.Context, code int64) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

var _ portssvc.PersonSvcFacade = (*MockPersonService)(nil)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, code int64) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccountsByPerson(ctx context.Context, personCode int64) ([]domain.Account, error) {
	args := m.Called(ctx, personCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, code int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, code, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ToggleAccountStatus(ctx context.Context, code int64) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByCode(ctx context.Context, code int64) (*domain.TransactionEntry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionEntry), args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByAccount(ctx context.Context, accountCode int64) ([]domain.TransactionEntry, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionEntry), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionEntry), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, code int64, req dto.UpdateTransactionRequest) (*domain.TransactionEntry, error) {
	args := m.Called(ctx, code, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionEntry), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock StatusService ---

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Status), args.Error(1)
}

var _ portssvc.StatusSvcFacade = (*MockStatusService)(nil)

// --- Mock UserLoginService ---

type MockUserLoginService struct {
	mock.Mock
}

func (m *MockUserLoginService) GetUserLoginByUsername(ctx context.Context, username string) (*domain.UserLogin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserLogin), args.Error(1)
}

func (m *MockUserLoginService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.UserLogin, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserLogin), args.Error(1)
}

var _ portssvc.UserLoginSvcFacade = (*MockUserLoginService)(nil)
