package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every failed API call:
// {"error":{"code","message","details","trace_id"}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates an error response carrying the catalog message
// for code
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError turns field errors into "field: message" details,
// sorted by field name
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewSystemError hides an internal failure behind SYSTEM_001. Callers log
// the cause themselves.
func NewSystemError(traceID string) *ErrorResponse {
	return NewErrorResponse(SystemInternalError, traceID)
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	TransferSameAccount:     http.StatusBadRequest,
	TransferInvalidAmount:   http.StatusBadRequest,
	LoanInvalidAmount:       http.StatusBadRequest,

	AuthInvalidCredentials: http.StatusUnauthorized,
	SessionNotActive:       http.StatusUnauthorized,

	AccountNotFound: http.StatusNotFound,
	LoanNotFound:    http.StatusNotFound,

	LoanNotPending: http.StatusConflict,

	// the request was well formed but the ledger refuses it
	AccountOperationNotPermitted: http.StatusUnprocessableEntity,
	TransferInsufficientFunds:    http.StatusUnprocessableEntity,
	LoanNotFundable:              http.StatusUnprocessableEntity,

	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemInternalError:      http.StatusInternalServerError,
	SystemUnexpectedError:    http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for code. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
