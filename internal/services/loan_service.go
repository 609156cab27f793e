package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bankist/internal/models"
	"bankist/internal/repositories"
	"bankist/internal/scheduler"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanPolicy holds the loan approval settings
type LoanPolicy struct {
	GrantDelay      time.Duration
	MinDepositRatio decimal.Decimal
}

// DefaultLoanPolicy grants after 3 seconds and requires one deposit of at
// least 10% of the loan
func DefaultLoanPolicy() LoanPolicy {
	return LoanPolicy{
		GrantDelay:      3 * time.Second,
		MinDepositRatio: decimal.NewFromFloat(0.1),
	}
}

type loanService struct {
	accountRepo repositories.AccountRepositoryInterface
	loanRepo    repositories.LoanRepositoryInterface
	scheduler   scheduler.Scheduler
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	policy      LoanPolicy
	logger      *slog.Logger

	// mu serializes grants against cancellation
	mu     sync.Mutex
	grants map[uuid.UUID]scheduler.Task
}

// NewLoanService creates a new loan service
func NewLoanService(
	accountRepo repositories.AccountRepositoryInterface,
	loanRepo repositories.LoanRepositoryInterface,
	sched scheduler.Scheduler,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	policy LoanPolicy,
	logger *slog.Logger,
) LoanServiceInterface {
	return &loanService{
		accountRepo: accountRepo,
		loanRepo:    loanRepo,
		scheduler:   sched,
		auditLogger: auditLogger,
		metrics:     metrics,
		policy:      policy,
		logger:      logger,
		grants:      make(map[uuid.UUID]scheduler.Task),
	}
}

// RequestLoan floors amount to whole units and accepts it if some movement of
// the account reaches the policy share of it. The deposit is posted after
// the grant delay unless the loan is cancelled first.
func (s *loanService) RequestLoan(ctx context.Context, username string, amount decimal.Decimal, onGranted func(*models.Loan)) (*models.Loan, error) {
	amount = amount.Floor()

	if err := s.validateLoanRequest(username, amount); err != nil {
		s.metrics.IncrementCounter("loans_total", map[string]string{"status": "rejected"})
		s.auditLogger.LogLoanRejected(ctx, username, amount.String(), err.Error())
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	loan := models.NewLoan(username, amount, s.scheduler.Now())
	if err := s.loanRepo.Create(loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	grantCtx := context.WithoutCancel(ctx)
	loanID := loan.ID
	s.grants[loanID] = s.scheduler.After(s.policy.GrantDelay, func() {
		s.grant(grantCtx, loanID, onGranted)
	})

	s.metrics.IncrementCounter("loans_total", map[string]string{"status": "requested"})
	s.auditLogger.LogLoanRequested(ctx, loan)

	return loan, nil
}

func (s *loanService) validateLoanRequest(username string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidLoanAmount
	}

	account, err := s.accountRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if !account.HasDepositOfAtLeast(amount.Mul(s.policy.MinDepositRatio)) {
		return ErrLoanNotFundable
	}

	return nil
}

func (s *loanService) grant(ctx context.Context, loanID uuid.UUID, onGranted func(*models.Loan)) {
	s.mu.Lock()
	delete(s.grants, loanID)

	loan, err := s.loanRepo.FindByID(loanID)
	if err != nil {
		s.mu.Unlock()
		s.logger.ErrorContext(ctx, "scheduled grant for unknown loan",
			slog.String("loan_id", loanID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	if !loan.IsPending() {
		s.mu.Unlock()
		return
	}

	now := s.scheduler.Now()
	if err := s.accountRepo.Record(loan.Username, loan.Amount, now); err != nil {
		s.logger.WarnContext(ctx, "dropping loan grant",
			slog.String("loan_id", loan.ID.String()),
			slog.String("username", loan.Username),
			slog.String("error", err.Error()),
		)
		s.cancelLocked(ctx, loan)
		s.mu.Unlock()
		return
	}

	if err := loan.Grant(now); err != nil {
		s.logger.ErrorContext(ctx, "failed to mark loan granted", slog.String("error", err.Error()))
	}
	if err := s.loanRepo.Update(loan); err != nil {
		s.logger.ErrorContext(ctx, "failed to update loan", slog.String("error", err.Error()))
	}
	s.mu.Unlock()

	s.metrics.IncrementCounter("loans_total", map[string]string{"status": "granted"})
	s.metrics.RecordGauge("loan_amount", loan.Amount.InexactFloat64(), nil)
	s.auditLogger.LogLoanGranted(ctx, loan)

	if onGranted != nil {
		onGranted(loan)
	}
}

// Cancel cancels one pending loan
func (s *loanService) Cancel(ctx context.Context, loanID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, err := s.loanRepo.FindByID(loanID)
	if err != nil {
		if errors.Is(err, repositories.ErrLoanNotFound) {
			return ErrLoanNotFound
		}
		return fmt.Errorf("failed to get loan: %w", err)
	}

	if !loan.IsPending() {
		return ErrLoanNotPending
	}

	s.cancelLocked(ctx, loan)
	return nil
}

// CancelPending cancels every pending loan of an account and returns how
// many were cancelled
func (s *loanService) CancelPending(ctx context.Context, username string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.loanRepo.ListPendingByUsername(username)
	for _, loan := range pending {
		s.cancelLocked(ctx, loan)
	}
	return len(pending)
}

// GetLoan retrieves a loan by ID
func (s *loanService) GetLoan(loanID uuid.UUID) (*models.Loan, error) {
	loan, err := s.loanRepo.FindByID(loanID)
	if err != nil {
		if errors.Is(err, repositories.ErrLoanNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

func (s *loanService) cancelLocked(ctx context.Context, loan *models.Loan) {
	if task, ok := s.grants[loan.ID]; ok {
		task.Cancel()
		delete(s.grants, loan.ID)
	}

	if err := loan.Cancel(s.scheduler.Now()); err != nil {
		s.logger.ErrorContext(ctx, "failed to cancel loan",
			slog.String("loan_id", loan.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if err := s.loanRepo.Update(loan); err != nil {
		s.logger.ErrorContext(ctx, "failed to update loan", slog.String("error", err.Error()))
	}

	s.metrics.IncrementCounter("loans_total", map[string]string{"status": "cancelled"})
	s.auditLogger.LogLoanCancelled(ctx, loan)
}
