package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEntry represents a row in the transactions table.
type TransactionEntry struct {
	Code            int64           `db:"code"`
	AccountCode     int64           `db:"account_code"`
	TransactionDate time.Time       `db:"transaction_date"`
	CaptureDate     time.Time       `db:"capture_date"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
}
