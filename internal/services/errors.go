package services

import "errors"

var (
	ErrAuthFailure         = errors.New("invalid username or pin")
	ErrNoActiveSession     = errors.New("no active session")
	ErrCloseRejected       = errors.New("credentials do not match the active account")
	ErrAccountNotFound     = errors.New("account not found")
	ErrRecipientNotFound   = errors.New("recipient account not found")
	ErrInvalidAmount       = errors.New("transfer amount must be greater than zero")
	ErrSameAccountTransfer = errors.New("cannot transfer to same account")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidLoanAmount   = errors.New("loan amount must be at least one whole unit")
	ErrLoanNotFundable     = errors.New("no deposit covers the required share of the loan")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrLoanNotPending      = errors.New("loan is no longer pending")
)
