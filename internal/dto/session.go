package dto

import (
	"time"

	"github.com/google/uuid"
)

// Session Request DTOs

// LoginRequest contains login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required,username"`
	Pin      string `json:"pin" validate:"required,pin"`
}

// Session Response DTOs

// SessionResponse describes the current session
type SessionResponse struct {
	LoggedIn         bool       `json:"logged_in"`
	SessionID        *uuid.UUID `json:"session_id,omitempty"`
	Username         string     `json:"username,omitempty"`
	Owner            string     `json:"owner,omitempty"`
	Greeting         string     `json:"greeting"`
	RemainingSeconds int        `json:"remaining_seconds"`
	Timer            string     `json:"timer"`
	Sorted           bool       `json:"sorted"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Session SessionResponse  `json:"session"`
	Account SnapshotResponse `json:"account"`
}

// SortResponse reports the movement sort state after a toggle
type SortResponse struct {
	Sorted  bool             `json:"sorted"`
	Account SnapshotResponse `json:"account"`
}

// SnapshotResponse is the formatted account view
type SnapshotResponse struct {
	Username  string             `json:"username"`
	Owner     string             `json:"owner"`
	Currency  string             `json:"currency"`
	Locale    string             `json:"locale"`
	Balance   MoneyResponse      `json:"balance"`
	Income    MoneyResponse      `json:"income"`
	Expense   MoneyResponse      `json:"expense"`
	Interest  MoneyResponse      `json:"interest"`
	Movements []MovementResponse `json:"movements"`
	Sorted    bool               `json:"sorted"`
	AsOf      string             `json:"as_of"`
	TakenAt   time.Time          `json:"taken_at"`
}

// MoneyResponse carries an exact amount and its display form
type MoneyResponse struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

// MovementResponse is one ledger row, numbered in chronological order
type MovementResponse struct {
	Number      int           `json:"number"`
	Type        string        `json:"type"`
	Amount      MoneyResponse `json:"amount"`
	Date        time.Time     `json:"date"`
	DisplayDate string        `json:"display_date"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string    `json:"status"`
	Accounts int       `json:"accounts"`
	Session  bool      `json:"session_active"`
	Time     time.Time `json:"time"`
}
