package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/traqbank/backoffice/internal/apperrors"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	accountService     portssvc.AccountSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, as portssvc.AccountSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		accountService:     as,
	}
}

// registerTransactionRoutes registers routes related to transactions. There
// is no delete route; captured transactions stay on the ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := newTransactionHandler(transactionService, accountService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:transactionID", h.getTransactionByCode)
		transactions.PUT("/:transactionID", h.updateTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions of an account
// @Description Retrieves the account's transactions, newest business date first
// @Tags transactions
// @Produce  json
// @Param   accountID query int true "Account code"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Missing or invalid accountID"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	account, err := h.accountService.GetAccountByCode(c.Request.Context(), params.AccountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	txns, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), params.AccountCode)
	if err != nil {
		logger.Error("Failed to list transactions in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	res := dto.ListTransactionsResponse{
		Account:      dto.ToAccountResponse(account),
		Transactions: dto.ToListTransactionResponse(txns),
	}
	c.JSON(http.StatusOK, res)
}

// createTransaction godoc
// @Summary Capture a transaction
// @Description Captures a transaction against an open account and applies the amount to its balance
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or closed account"
// @Failure 500 {object} map[string]string "Failed to capture transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to capture transaction"})
		}
		return
	}

	logger.Info("Transaction captured successfully", slog.Int64("transaction_code", txn.Code))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransactionByCode godoc
// @Summary Get a transaction by code
// @Description Retrieves a transaction together with its account
// @Tags transactions
// @Produce  json
// @Param   transactionID path int true "Transaction code"
// @Success 200 {object} dto.TransactionDetailResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransactionByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "transactionID")
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	account, err := h.accountService.GetAccountByCode(c.Request.Context(), txn.AccountCode)
	if err != nil {
		logger.Error("Failed to get transaction account from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	res := dto.TransactionDetailResponse{
		TransactionResponse: dto.ToTransactionResponse(txn),
		Account:             dto.ToAccountResponse(account),
	}
	c.JSON(http.StatusOK, res)
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Edits a transaction; the amount delta is applied to the target account's balance
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path int true "Transaction code"
// @Param   transaction body dto.UpdateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or closed account"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "transactionID")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), code, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
