package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	"github.com/traqbank/backoffice/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         *TransactionService
	ctx             context.Context
	fixedNow        time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo)
	suite.fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.service.now = func() time.Time { return suite.fixedNow }
	suite.ctx = context.Background()
}

func (suite *TransactionServiceTestSuite) openAccount(code int64) *domain.Account {
	return &domain.Account{Code: code, StatusCode: domain.StatusOpen, OutstandingBalance: decimal.Zero}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		AccountCode:     10,
		TransactionDate: suite.fixedNow.AddDate(0, 0, -1),
		Amount:          decimal.NewFromInt(150),
		Description:     "Salary deposit",
	}

	suite.mockAccountRepo.On("FindAccountByCode", suite.ctx, int64(10)).Return(suite.openAccount(10), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("*domain.TransactionEntry")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.TransactionEntry).Code = 77
	}).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.NoError(err)
	suite.Equal(int64(77), txn.Code)
	suite.Equal(suite.fixedNow, txn.CaptureDate)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ZeroAmountRejected() {
	req := dto.CreateTransactionRequest{
		AccountCode:     10,
		TransactionDate: suite.fixedNow,
		Amount:          decimal.Zero,
		Description:     "Nothing",
	}

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountAllowed() {
	req := dto.CreateTransactionRequest{
		AccountCode:     10,
		TransactionDate: suite.fixedNow,
		Amount:          decimal.NewFromInt(-75),
		Description:     "ATM withdrawal",
	}

	suite.mockAccountRepo.On("FindAccountByCode", suite.ctx, int64(10)).Return(suite.openAccount(10), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("*domain.TransactionEntry")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.NoError(err)
	suite.True(txn.Amount.IsNegative())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_FutureDateRejected() {
	req := dto.CreateTransactionRequest{
		AccountCode:     10,
		TransactionDate: suite.fixedNow.AddDate(0, 0, 1),
		Amount:          decimal.NewFromInt(100),
		Description:     "Postdated",
	}

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_LaterTodayAccepted() {
	// 18:00 with the clock at noon: same calendar day, so not a future date.
	req := dto.CreateTransactionRequest{
		AccountCode:     10,
		TransactionDate: time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(100),
		Description:     "Evening deposit",
	}

	suite.mockAccountRepo.On("FindAccountByCode", suite.ctx, int64(10)).Return(suite.openAccount(10), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("*domain.TransactionEntry")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.NoError(err)
	suite.NotNil(txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NextDayMidnightRejected() {
	req := dto.CreateTransactionRequest{
		AccountCode:     10,
		TransactionDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(100),
		Description:     "Postdated",
	}

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ClosedAccountRejected() {
	closed := &domain.Account{Code: 10, StatusCode: domain.StatusClosed}
	req := dto.CreateTransactionRequest{
		AccountCode:     10,
		TransactionDate: suite.fixedNow,
		Amount:          decimal.NewFromInt(100),
		Description:     "Deposit",
	}

	suite.mockAccountRepo.On("FindAccountByCode", suite.ctx, int64(10)).Return(closed, nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccountRejected() {
	req := dto.CreateTransactionRequest{
		AccountCode:     99,
		TransactionDate: suite.fixedNow,
		Amount:          decimal.NewFromInt(100),
		Description:     "Deposit",
	}

	suite.mockAccountRepo.On("FindAccountByCode", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RefreshesCaptureDate() {
	stored := &domain.TransactionEntry{Code: 77, AccountCode: 10, Amount: decimal.NewFromInt(100)}
	req := dto.UpdateTransactionRequest{
		AccountCode:     10,
		TransactionDate: suite.fixedNow.AddDate(0, 0, -2),
		Amount:          decimal.NewFromInt(160),
		Description:     "Corrected deposit",
	}

	suite.mockTxnRepo.On("FindTransactionByCode", suite.ctx, int64(77)).Return(stored, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", suite.ctx, int64(10)).Return(suite.openAccount(10), nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(t domain.TransactionEntry) bool {
		return t.Code == 77 && t.CaptureDate.Equal(suite.fixedNow) && t.Amount.Equal(decimal.NewFromInt(160))
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(suite.ctx, 77, req)

	suite.NoError(err)
	suite.Equal(suite.fixedNow, txn.CaptureDate)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_MovesToAnotherAccount() {
	stored := &domain.TransactionEntry{Code: 77, AccountCode: 10, Amount: decimal.NewFromInt(100)}
	req := dto.UpdateTransactionRequest{
		AccountCode:     20,
		TransactionDate: suite.fixedNow,
		Amount:          decimal.NewFromInt(100),
		Description:     "Moved",
	}

	suite.mockTxnRepo.On("FindTransactionByCode", suite.ctx, int64(77)).Return(stored, nil).Once()
	// The new target account is the one validated.
	suite.mockAccountRepo.On("FindAccountByCode", suite.ctx, int64(20)).Return(suite.openAccount(20), nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(t domain.TransactionEntry) bool {
		return t.AccountCode == 20
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(suite.ctx, 77, req)

	suite.NoError(err)
	suite.Equal(int64(20), txn.AccountCode)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockTxnRepo.On("FindTransactionByCode", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	req := dto.UpdateTransactionRequest{
		AccountCode:     10,
		TransactionDate: suite.fixedNow,
		Amount:          decimal.NewFromInt(1),
		Description:     "x",
	}
	txn, err := suite.service.UpdateTransaction(suite.ctx, 99, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByAccount_UnknownAccount() {
	suite.mockAccountRepo.On("FindAccountByCode", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	txns, err := suite.service.ListTransactionsByAccount(suite.ctx, 99)

	suite.Nil(txns)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccount")
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
