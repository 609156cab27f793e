package dto

import (
	"encoding/json"
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
)

// Account Request DTOs

// TransferRequest represents the request payload for transferring money to another account
type TransferRequest struct {
	To     string      `json:"to" validate:"required,username"`
	Amount json.Number `json:"amount" validate:"required,decimal_amount"`
}

// LoanRequest represents the request payload for requesting a loan
type LoanRequest struct {
	Amount json.Number `json:"amount" validate:"required,positive_amount"`
}

// CloseAccountRequest repeats the credentials of the logged-in account
type CloseAccountRequest struct {
	Username string `json:"username" validate:"required,username"`
	Pin      string `json:"pin" validate:"required,pin"`
}

// Account Response DTOs

// TransferResponse represents a posted transfer in API responses
type TransferResponse struct {
	ID       uuid.UUID `json:"id"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	Amount   string    `json:"amount"`
	PostedAt time.Time `json:"posted_at"`
}

// LoanResponse represents a loan in API responses
type LoanResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	GrantedAt   *time.Time `json:"granted_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// NewTransferResponse converts a transfer model to its response
func NewTransferResponse(t *models.Transfer) TransferResponse {
	return TransferResponse{
		ID:       t.ID,
		From:     t.FromUsername,
		To:       t.ToUsername,
		Amount:   t.Amount.StringFixed(2),
		PostedAt: t.PostedAt,
	}
}

// NewLoanResponse converts a loan model to its response
func NewLoanResponse(l *models.Loan) LoanResponse {
	return LoanResponse{
		ID:          l.ID,
		Username:    l.Username,
		Amount:      l.Amount.StringFixed(2),
		Status:      l.Status,
		RequestedAt: l.RequestedAt,
		GrantedAt:   l.GrantedAt,
		CancelledAt: l.CancelledAt,
	}
}
