package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a monetary ledger owned by one person. The balance is
// mutated only by transaction effects, never directly by the user.
type Account struct {
	Code               int64           `json:"code"`
	PersonCode         int64           `json:"personCode"`
	AccountNumber      string          `json:"accountNumber"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	StatusCode         StatusCode      `json:"statusCode"`
}

// IsClosed reports whether the account is in the Closed status.
func (a Account) IsClosed() bool {
	return a.StatusCode == StatusClosed
}
