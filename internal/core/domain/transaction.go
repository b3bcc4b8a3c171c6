package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEntry represents a dated, signed monetary amount applied to
// exactly one account. CaptureDate is set by the server on every create and
// update; TransactionDate is the business date supplied by the user.
type TransactionEntry struct {
	Code            int64           `json:"code"`
	AccountCode     int64           `json:"accountCode"`
	TransactionDate time.Time       `json:"transactionDate"`
	CaptureDate     time.Time       `json:"captureDate"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}
