package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/traqbank/backoffice/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to capture a transaction.
// The capture date is always set by the server.
type CreateTransactionRequest struct {
	AccountCode     int64           `json:"accountCode" binding:"required"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description" binding:"required,max=100"`
}

// UpdateTransactionRequest defines the data allowed when editing a
// transaction. The target account may differ from the original one.
type UpdateTransactionRequest struct {
	AccountCode     int64           `json:"accountCode" binding:"required"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description" binding:"required,max=100"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	Code            int64           `json:"code"`
	AccountCode     int64           `json:"accountCode"`
	TransactionDate time.Time       `json:"transactionDate"`
	CaptureDate     time.Time       `json:"captureDate"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// TransactionDetailResponse is a transaction together with its account.
type TransactionDetailResponse struct {
	TransactionResponse
	Account AccountResponse `json:"account"`
}

// ListTransactionsParams defines query parameters for the transaction listing.
type ListTransactionsParams struct {
	AccountCode int64 `form:"accountID" binding:"required"`
}

// ListTransactionsResponse wraps the transactions of one account, newest
// business date first.
type ListTransactionsResponse struct {
	Account      AccountResponse       `json:"account"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.TransactionEntry to a response.
func ToTransactionResponse(t *domain.TransactionEntry) TransactionResponse {
	return TransactionResponse{
		Code:            t.Code,
		AccountCode:     t.AccountCode,
		TransactionDate: t.TransactionDate,
		CaptureDate:     t.CaptureDate,
		Amount:          t.Amount,
		Description:     t.Description,
	}
}

// ToListTransactionResponse converts a slice of transactions to responses.
func ToListTransactionResponse(txns []domain.TransactionEntry) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
