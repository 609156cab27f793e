package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
	ErrSameTransferAccounts  = errors.New("from and to accounts cannot be the same")
)

// Transfer records one posted account-to-account transfer. Both legs carry
// PostedAt as their movement date.
type Transfer struct {
	ID           uuid.UUID       `json:"id"`
	FromUsername string          `json:"from_username"`
	ToUsername   string          `json:"to_username"`
	Amount       decimal.Decimal `json:"amount"`
	PostedAt     time.Time       `json:"posted_at"`
}

// NewTransfer creates a transfer record with a fresh ID
func NewTransfer(from, to string, amount decimal.Decimal, postedAt time.Time) *Transfer {
	return &Transfer{
		ID:           uuid.New(),
		FromUsername: from,
		ToUsername:   to,
		Amount:       amount,
		PostedAt:     postedAt,
	}
}

// Validate validates the transfer fields
func (t *Transfer) Validate() error {
	if t.FromUsername == "" {
		return errors.New("from username is required")
	}

	if t.ToUsername == "" {
		return errors.New("to username is required")
	}

	if t.FromUsername == t.ToUsername {
		return ErrSameTransferAccounts
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidTransferAmount
	}

	if t.PostedAt.IsZero() {
		return ErrMissingTimestamp
	}

	return nil
}
