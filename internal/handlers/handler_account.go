package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/traqbank/backoffice/internal/apperrors"
	"github.com/traqbank/backoffice/internal/core/domain"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/middleware"
	"github.com/traqbank/backoffice/internal/utils/statement"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	personService      portssvc.PersonSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ps portssvc.PersonSvcFacade, ts portssvc.TransactionSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:     as,
		personService:      ps,
		transactionService: ts,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, personService portssvc.PersonSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newAccountHandler(accountService, personService, transactionService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountID", h.getAccountByCode)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.POST("/:accountID/toggle", h.toggleAccountStatus)
		accounts.GET("/:accountID/statement", h.downloadStatement)
	}
}

// listAccounts godoc
// @Summary List accounts of a person
// @Description Retrieves all accounts belonging to the given person
// @Tags accounts
// @Produce  json
// @Param   personID query int true "Person code"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Missing or invalid personID"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	person, err := h.personService.GetPersonByCode(c.Request.Context(), params.PersonCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else {
			logger.Error("Failed to get person from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		}
		return
	}

	accounts, err := h.accountService.ListAccountsByPerson(c.Request.Context(), params.PersonCode)
	if err != nil {
		logger.Error("Failed to list accounts in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	res := dto.ListAccountsResponse{
		Person:   dto.ToPersonResponse(person),
		Accounts: dto.ToListAccountResponse(accounts),
	}
	c.JSON(http.StatusOK, res)
}

// createAccount godoc
// @Summary Open a new account
// @Description Opens an account for a person; the balance always starts at zero and the status at Open
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Account number already exists"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	logger.Info("Account created successfully", slog.Int64("account_code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccountByCode godoc
// @Summary Get an account by code
// @Description Retrieves an account together with its owner and full transaction history
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account code"
// @Success 200 {object} dto.AccountDetailResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccountByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "accountID")
	if !ok {
		return
	}

	account, person, txns, err := h.loadAccountDetail(c, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to load account detail", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	res := dto.AccountDetailResponse{
		AccountResponse: dto.ToAccountResponse(account),
		Person:          dto.ToPersonResponse(person),
		Transactions:    dto.ToListTransactionResponse(txns),
	}
	c.JSON(http.StatusOK, res)
}

// updateAccount godoc
// @Summary Update an account
// @Description Edits an account's owner and number; the stored balance and status are preserved
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path int true "Account code"
// @Param   account body dto.UpdateAccountRequest true "Account details"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account number already exists"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "accountID")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), code, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// toggleAccountStatus godoc
// @Summary Toggle an account's status
// @Description Closes an open account (zero balance required) or reopens a closed one
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Outstanding balance is not zero"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to toggle account status"
// @Security BearerAuth
// @Router /accounts/{accountID}/toggle [post]
func (h *accountHandler) toggleAccountStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "accountID")
	if !ok {
		return
	}

	account, err := h.accountService.ToggleAccountStatus(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to toggle account status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle account status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// downloadStatement godoc
// @Summary Download an account statement
// @Description Renders the account's transaction history as a PDF or XLSX download
// @Tags accounts
// @Produce  application/octet-stream
// @Param   accountID path int true "Account code"
// @Param   format query string true "Export format" Enums(pdf, xlsx)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Unknown format"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to render statement"
// @Security BearerAuth
// @Router /accounts/{accountID}/statement [get]
func (h *accountHandler) downloadStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c, "accountID")
	if !ok {
		return
	}

	format := c.Query("format")
	if format != "pdf" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be pdf or xlsx"})
		return
	}

	account, person, txns, err := h.loadAccountDetail(c, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to load account detail", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render statement"})
		}
		return
	}

	stmt := statement.Statement{
		Person:       *person,
		Account:      *account,
		Transactions: txns,
	}

	var buf bytes.Buffer
	contentType := "application/pdf"
	if format == "pdf" {
		err = stmt.WritePDF(&buf)
	} else {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = stmt.WriteXLSX(&buf)
	}
	if err != nil {
		logger.Error("Failed to render statement", slog.String("error", err.Error()), slog.String("format", format))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render statement"})
		return
	}

	filename := fmt.Sprintf("statement_%s.%s", account.AccountNumber, format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// loadAccountDetail fetches the account, its owner and its transactions.
func (h *accountHandler) loadAccountDetail(c *gin.Context, code int64) (*domain.Account, *domain.Person, []domain.TransactionEntry, error) {
	ctx := c.Request.Context()

	account, err := h.accountService.GetAccountByCode(ctx, code)
	if err != nil {
		return nil, nil, nil, err
	}
	person, err := h.personService.GetPersonByCode(ctx, account.PersonCode)
	if err != nil {
		return nil, nil, nil, err
	}
	txns, err := h.transactionService.ListTransactionsByAccount(ctx, code)
	if err != nil {
		return nil, nil, nil, err
	}
	return account, person, txns, nil
}
