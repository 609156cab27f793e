package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"bankist/internal/errors"
	"bankist/internal/services"
	"bankist/internal/validation"

	"github.com/labstack/echo/v4"
)

// All handlers answer failures through SendError for client and business
// errors, SendServiceError for errors returned by the session, and
// SendSystemError for anything that must not leak internal details.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// serviceErrorCodes maps core sentinel errors to API error codes
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrAuthFailure, errors.AuthInvalidCredentials},
	{services.ErrNoActiveSession, errors.SessionNotActive},
	{services.ErrCloseRejected, errors.AccountOperationNotPermitted},
	{services.ErrRecipientNotFound, errors.AccountNotFound},
	{services.ErrAccountNotFound, errors.AccountNotFound},
	{services.ErrInvalidAmount, errors.TransferInvalidAmount},
	{services.ErrSameAccountTransfer, errors.TransferSameAccount},
	{services.ErrInsufficientFunds, errors.TransferInsufficientFunds},
	{services.ErrInvalidLoanAmount, errors.LoanInvalidAmount},
	{services.ErrLoanNotFundable, errors.LoanNotFundable},
	{services.ErrLoanNotFound, errors.LoanNotFound},
	{services.ErrLoanNotPending, errors.LoanNotPending},
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with the generic SYSTEM_001 message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "internal error",
		slog.String("trace_id", traceID),
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
	)
	errorResponse := errors.NewSystemError(traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a session error to its API code. Unknown errors are
// answered as system errors.
func SendServiceError(c echo.Context, err error) error {
	if code, ok := ErrorCodeFor(err); ok {
		return SendError(c, code)
	}
	return SendSystemError(c, err)
}

// ErrorCodeFor returns the API error code of a core error
func ErrorCodeFor(err error) (errors.ErrorCode, bool) {
	for _, mapping := range serviceErrorCodes {
		if stderrors.Is(err, mapping.err) {
			return mapping.code, true
		}
	}
	return "", false
}

// SendValidationError answers a bind or validation failure with VALIDATION_001
func SendValidationError(c echo.Context, err error) error {
	if fieldErrors := validation.FieldErrors(err); fieldErrors != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationError(fieldErrors, getTraceID(c)))
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
}
