package dto

import (
	"github.com/shopspring/decimal"
	"github.com/traqbank/backoffice/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
// OutstandingBalance and StatusCode are accepted but ignored: a new account
// always starts at zero balance with status Open, regardless of client input.
type CreateAccountRequest struct {
	PersonCode         int64            `json:"personCode" binding:"required"`
	AccountNumber      string           `json:"accountNumber" binding:"required,max=50"`
	OutstandingBalance *decimal.Decimal `json:"outstandingBalance"`
	StatusCode         *int16           `json:"statusCode"`
}

// UpdateAccountRequest defines the data allowed when editing an account.
// Balance and status submitted here are ignored; the server-held values are
// preserved.
type UpdateAccountRequest struct {
	PersonCode         int64            `json:"personCode" binding:"required"`
	AccountNumber      string           `json:"accountNumber" binding:"required,max=50"`
	OutstandingBalance *decimal.Decimal `json:"outstandingBalance"`
	StatusCode         *int16           `json:"statusCode"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code               int64           `json:"code"`
	PersonCode         int64           `json:"personCode"`
	AccountNumber      string          `json:"accountNumber"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	StatusCode         int16           `json:"statusCode"`
	StatusName         string          `json:"statusName"`
}

// AccountDetailResponse aggregates an account with its owner and full
// transaction list.
type AccountDetailResponse struct {
	AccountResponse
	Person       PersonResponse        `json:"person"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ListAccountsParams defines query parameters for the account listing.
type ListAccountsParams struct {
	PersonCode int64 `form:"personID" binding:"required"`
}

// ListAccountsResponse wraps the accounts of one person.
type ListAccountsResponse struct {
	Person   PersonResponse    `json:"person"`
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Code:               a.Code,
		PersonCode:         a.PersonCode,
		AccountNumber:      a.AccountNumber,
		OutstandingBalance: a.OutstandingBalance,
		StatusCode:         int16(a.StatusCode),
		StatusName:         a.StatusCode.String(),
	}
}

// ToListAccountResponse converts a slice of domain.Account to responses.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
