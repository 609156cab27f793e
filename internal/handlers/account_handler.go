package handlers

import (
	"log/slog"
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountHandler handles money movements of the logged-in account
type AccountHandler struct {
	session services.SessionInterface
	logger  *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(session services.SessionInterface, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		session: session,
		logger:  logger,
	}
}

// Transfer moves money from the logged-in account to another account
// @Summary Transfer money
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Recipient and amount"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSFER_001/TRANSFER_006 - Same account or invalid amount"
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - No active session"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Recipient not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSFER_005 - Insufficient balance"
// @Router /transfers [post]
func (h *AccountHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendValidationError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transfer amount"))
	}

	transfer, err := h.session.Transfer(c.Request().Context(), req.To, amount)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransferResponse(transfer))
}

// RequestLoan asks for a loan that is deposited after the grant delay
// @Summary Request a loan
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan amount"
// @Success 202 {object} dto.LoanResponse "Loan accepted and pending"
// @Failure 400 {object} errors.ErrorResponse "LOAN_001 - Invalid loan amount"
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - No active session"
// @Failure 422 {object} errors.ErrorResponse "LOAN_002 - No qualifying deposit"
// @Router /loans [post]
func (h *AccountHandler) RequestLoan(c echo.Context) error {
	var req dto.LoanRequest
	if err := c.Bind(&req); err != nil {
		return SendValidationError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid loan amount"))
	}

	loan, err := h.session.RequestLoan(c.Request().Context(), amount)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusAccepted, dto.NewLoanResponse(loan))
}

// GetLoan returns a loan of the logged-in account
// @Summary Get loan
// @Tags Accounts
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid loan ID"
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - No active session"
// @Failure 404 {object} errors.ErrorResponse "LOAN_003 - Loan not found"
// @Router /loans/{id} [get]
func (h *AccountHandler) GetLoan(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid loan ID"))
	}

	loan, err := h.session.Loan(loanID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewLoanResponse(loan))
}

// CancelLoan cancels a pending loan of the logged-in account before it posts
// @Summary Cancel loan
// @Tags Accounts
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid loan ID"
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - No active session"
// @Failure 404 {object} errors.ErrorResponse "LOAN_003 - Loan not found"
// @Failure 409 {object} errors.ErrorResponse "LOAN_004 - Loan already granted or cancelled"
// @Router /loans/{id} [delete]
func (h *AccountHandler) CancelLoan(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid loan ID"))
	}

	if err := h.session.CancelLoan(c.Request().Context(), loanID); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Loan cancelled"})
}

// CloseAccount deletes the logged-in account after confirming its credentials
// @Summary Close account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CloseAccountRequest true "Credentials of the logged-in account"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - No active session"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_005 - Credentials do not match"
// @Router /accounts [delete]
func (h *AccountHandler) CloseAccount(c echo.Context) error {
	var req dto.CloseAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendValidationError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	if err := h.session.CloseAccount(c.Request().Context(), req.Username, req.Pin); err != nil {
		return SendServiceError(c, err)
	}

	h.logger.InfoContext(c.Request().Context(), "account closed", slog.String("username", req.Username))
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Account closed"})
}
