package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LoanStatusPending   = "pending"
	LoanStatusGranted   = "granted"
	LoanStatusCancelled = "cancelled"
)

var (
	ErrInvalidLoanStatus     = errors.New("invalid loan status")
	ErrInvalidLoanTransition = errors.New("invalid loan status transition")
)

// Loan is a deferred deposit. It is created pending and ends either granted,
// with the movement posted at GrantedAt, or cancelled.
type Loan struct {
	ID          uuid.UUID       `json:"id"`
	Username    string          `json:"username"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	RequestedAt time.Time       `json:"requested_at"`
	GrantedAt   *time.Time      `json:"granted_at,omitempty"`
	CancelledAt *time.Time      `json:"cancelled_at,omitempty"`
}

// NewLoan creates a pending loan
func NewLoan(username string, amount decimal.Decimal, requestedAt time.Time) *Loan {
	return &Loan{
		ID:          uuid.New(),
		Username:    username,
		Amount:      amount,
		Status:      LoanStatusPending,
		RequestedAt: requestedAt,
	}
}

// IsPending returns true if the loan has not been granted or cancelled
func (l *Loan) IsPending() bool {
	return l.Status == LoanStatusPending
}

// IsGranted returns true if the loan amount was posted
func (l *Loan) IsGranted() bool {
	return l.Status == LoanStatusGranted
}

// IsCancelled returns true if the loan was cancelled before posting
func (l *Loan) IsCancelled() bool {
	return l.Status == LoanStatusCancelled
}

// Grant marks the loan as granted at the given time
func (l *Loan) Grant(at time.Time) error {
	if !l.CanTransitionTo(LoanStatusGranted) {
		return ErrInvalidLoanTransition
	}
	l.Status = LoanStatusGranted
	l.GrantedAt = &at
	return nil
}

// Cancel marks the loan as cancelled at the given time
func (l *Loan) Cancel(at time.Time) error {
	if !l.CanTransitionTo(LoanStatusCancelled) {
		return ErrInvalidLoanTransition
	}
	l.Status = LoanStatusCancelled
	l.CancelledAt = &at
	return nil
}

// CanTransitionTo checks if a loan can transition to a new status
func (l *Loan) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		LoanStatusPending:   {LoanStatusGranted, LoanStatusCancelled},
		LoanStatusGranted:   {},
		LoanStatusCancelled: {},
	}

	allowedStatuses, exists := validTransitions[l.Status]
	if !exists {
		return false
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// IsValidLoanStatus checks if the loan status is valid
func IsValidLoanStatus(status string) bool {
	switch status {
	case LoanStatusPending, LoanStatusGranted, LoanStatusCancelled:
		return true
	default:
		return false
	}
}
