package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a row in the accounts table.
type Account struct {
	Code               int64           `db:"code"`
	PersonCode         int64           `db:"person_code"`
	AccountNumber      string          `db:"account_number"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	StatusCode         int16           `db:"status_code"`
}
