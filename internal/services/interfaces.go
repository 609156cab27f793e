package services

import (
	"context"
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferServiceInterface defines account-to-account transfer operations
type TransferServiceInterface interface {
	Transfer(ctx context.Context, fromUsername, toUsername string, amount decimal.Decimal) (*models.Transfer, error)
}

// LoanServiceInterface defines loan request and deferred grant operations
type LoanServiceInterface interface {
	// RequestLoan validates the request and schedules the grant. onGranted
	// runs after the deposit has been posted.
	RequestLoan(ctx context.Context, username string, amount decimal.Decimal, onGranted func(*models.Loan)) (*models.Loan, error)
	Cancel(ctx context.Context, loanID uuid.UUID) error
	CancelPending(ctx context.Context, username string) int
	GetLoan(loanID uuid.UUID) (*models.Loan, error)
}

// SessionInterface is the single-user banking session the transport drives
type SessionInterface interface {
	Login(ctx context.Context, username, pin string) (*models.AccountSnapshot, error)
	Logout(ctx context.Context) error
	Transfer(ctx context.Context, toUsername string, amount decimal.Decimal) (*models.Transfer, error)
	RequestLoan(ctx context.Context, amount decimal.Decimal) (*models.Loan, error)
	Loan(loanID uuid.UUID) (*models.Loan, error)
	CancelLoan(ctx context.Context, loanID uuid.UUID) error
	CloseAccount(ctx context.Context, username, pin string) error
	ToggleSort(ctx context.Context) (bool, error)
	Snapshot() (*models.AccountSnapshot, error)
	State() SessionState
	Shutdown(ctx context.Context)
}

// SessionObserver receives the session's presentation callbacks. Callbacks
// run while the session is locked and must not call back into it.
type SessionObserver interface {
	OnRefresh(snapshot models.AccountSnapshot)
	OnTick(remainingSeconds int)
	OnLogout(reason string)
}

type PinServiceInterface interface {
	HashPin(pin string) (string, error)
	ComparePin(pin, hash string) bool
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogLogin(ctx context.Context, sessionID uuid.UUID, username string)
	LogLoginFailed(ctx context.Context, username string)
	LogLogout(ctx context.Context, sessionID uuid.UUID, username, reason string)
	LogTransferCompleted(ctx context.Context, transfer *models.Transfer, durationMs int64)
	LogTransferRejected(ctx context.Context, fromUsername, toUsername, amount, reason string)
	LogLoanRequested(ctx context.Context, loan *models.Loan)
	LogLoanRejected(ctx context.Context, username, amount, reason string)
	LogLoanGranted(ctx context.Context, loan *models.Loan)
	LogLoanCancelled(ctx context.Context, loan *models.Loan)
	LogAccountClosed(ctx context.Context, sessionID uuid.UUID, username string)
}
