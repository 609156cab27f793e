package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"bankist/internal/models"
	"bankist/internal/repositories"
	"bankist/internal/scheduler"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LogoutReasonManual   = "logout"
	LogoutReasonExpired  = "expired"
	LogoutReasonClosed   = "closed"
	LogoutReasonReplaced = "replaced"
	LogoutReasonShutdown = "shutdown"
)

// SessionConfig holds the idle-logout settings
type SessionConfig struct {
	IdleSeconds  int
	TickInterval time.Duration
}

// DefaultSessionConfig logs out after 20 idle seconds
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		IdleSeconds:  20,
		TickInterval: time.Second,
	}
}

// SessionState describes the session for the transport
type SessionState struct {
	LoggedIn         bool      `json:"logged_in"`
	SessionID        uuid.UUID `json:"session_id,omitempty"`
	Username         string    `json:"username,omitempty"`
	Owner            string    `json:"owner,omitempty"`
	RemainingSeconds int       `json:"remaining_seconds"`
	Sorted           bool      `json:"sorted"`
}

// Session holds the one active account and its idle-logout countdown.
// Requests and scheduler callbacks all enter through mu.
type Session struct {
	accountRepo repositories.AccountRepositoryInterface
	transfers   TransferServiceInterface
	loans       LoanServiceInterface
	pins        PinServiceInterface
	scheduler   scheduler.Scheduler
	observer    SessionObserver
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	config      SessionConfig
	logger      *slog.Logger

	mu        sync.Mutex
	id        uuid.UUID
	username  string
	owner     string
	sorted    bool
	remaining int
	countdown scheduler.Task
	// generation identifies the current countdown; ticks from older ones
	// are ignored
	generation uint64
}

// NewSession creates a logged-out session
func NewSession(
	accountRepo repositories.AccountRepositoryInterface,
	transfers TransferServiceInterface,
	loans LoanServiceInterface,
	pins PinServiceInterface,
	sched scheduler.Scheduler,
	observer SessionObserver,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	config SessionConfig,
	logger *slog.Logger,
) *Session {
	if config.IdleSeconds <= 0 {
		config.IdleSeconds = DefaultSessionConfig().IdleSeconds
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultSessionConfig().TickInterval
	}

	return &Session{
		accountRepo: accountRepo,
		transfers:   transfers,
		loans:       loans,
		pins:        pins,
		scheduler:   sched,
		observer:    observer,
		auditLogger: auditLogger,
		metrics:     metrics,
		config:      config,
		logger:      logger,
	}
}

// Login authenticates by username and the numeric value of pin. Unknown
// usernames and wrong PINs both return ErrAuthFailure. A login while another
// session is active ends that session first.
func (s *Session) Login(ctx context.Context, username, pin string) (*models.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accountRepo.FindByUsername(username)
	if err != nil || !s.pins.ComparePin(pin, account.PinHash) {
		if err != nil && !errors.Is(err, repositories.ErrAccountNotFound) {
			s.logger.ErrorContext(ctx, "failed to look up account", slog.String("error", err.Error()))
		}
		s.metrics.IncrementCounter("sessions_total", map[string]string{"event": "login_failed"})
		s.auditLogger.LogLoginFailed(ctx, username)
		return nil, ErrAuthFailure
	}

	if s.loggedInLocked() {
		s.endLocked(ctx, LogoutReasonReplaced)
	}

	s.id = uuid.New()
	s.username = account.Username
	s.owner = account.Owner
	s.sorted = false
	s.startCountdownLocked()

	s.metrics.IncrementCounter("sessions_total", map[string]string{"event": "login"})
	s.metrics.RecordGauge("active_sessions", 1, nil)
	s.auditLogger.LogLogin(ctx, s.id, s.username)

	snapshot := models.NewAccountSnapshot(account, s.sorted, s.scheduler.Now())
	s.observer.OnRefresh(snapshot)
	return &snapshot, nil
}

// Logout ends the active session
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return ErrNoActiveSession
	}

	s.endLocked(ctx, LogoutReasonManual)
	return nil
}

// Transfer sends amount from the active account. A successful transfer
// restarts the countdown; a rejected one changes nothing.
func (s *Session) Transfer(ctx context.Context, toUsername string, amount decimal.Decimal) (*models.Transfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return nil, ErrNoActiveSession
	}

	transfer, err := s.transfers.Transfer(ctx, s.username, toUsername, amount)
	if err != nil {
		return nil, err
	}

	s.startCountdownLocked()
	s.refreshLocked(ctx)
	return transfer, nil
}

// RequestLoan requests a loan for the active account. The countdown is
// restarted when the deposit posts, not when the request is accepted.
func (s *Session) RequestLoan(ctx context.Context, amount decimal.Decimal) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return nil, ErrNoActiveSession
	}

	sessionID := s.id
	return s.loans.RequestLoan(ctx, s.username, amount, func(loan *models.Loan) {
		s.onLoanGranted(sessionID, loan)
	})
}

func (s *Session) onLoanGranted(sessionID uuid.UUID, loan *models.Loan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() || s.id != sessionID || s.username != loan.Username {
		return
	}

	s.startCountdownLocked()
	s.refreshLocked(context.Background())
}

// Loan returns a loan of the active account
func (s *Session) Loan(loanID uuid.UUID) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return nil, ErrNoActiveSession
	}

	return s.ownLoanLocked(loanID)
}

// CancelLoan cancels a pending loan of the active account before it posts
func (s *Session) CancelLoan(ctx context.Context, loanID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return ErrNoActiveSession
	}

	if _, err := s.ownLoanLocked(loanID); err != nil {
		return err
	}

	return s.loans.Cancel(ctx, loanID)
}

// ownLoanLocked hides loans of other accounts behind ErrLoanNotFound
func (s *Session) ownLoanLocked(loanID uuid.UUID) (*models.Loan, error) {
	loan, err := s.loans.GetLoan(loanID)
	if err != nil {
		return nil, err
	}
	if loan.Username != s.username {
		return nil, ErrLoanNotFound
	}
	return loan, nil
}

// CloseAccount deletes the active account when username and pin match it,
// then ends the session
func (s *Session) CloseAccount(ctx context.Context, username, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return ErrNoActiveSession
	}

	if username != s.username {
		return ErrCloseRejected
	}

	account, err := s.accountRepo.FindByUsername(s.username)
	if err != nil {
		return fmt.Errorf("failed to get active account: %w", err)
	}
	if !s.pins.ComparePin(pin, account.PinHash) {
		return ErrCloseRejected
	}

	sessionID := s.id
	s.endLocked(ctx, LogoutReasonClosed)
	s.accountRepo.Remove(account.Username)
	s.auditLogger.LogAccountClosed(ctx, sessionID, account.Username)

	return nil
}

// ToggleSort flips the display order of movements and returns the new flag
func (s *Session) ToggleSort(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return false, ErrNoActiveSession
	}

	s.sorted = !s.sorted
	s.refreshLocked(ctx)
	return s.sorted, nil
}

// Snapshot aggregates the active account for display
func (s *Session) Snapshot() (*models.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return nil, ErrNoActiveSession
	}

	return s.snapshotLocked()
}

// State returns the current session state
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() {
		return SessionState{}
	}

	return SessionState{
		LoggedIn:         true,
		SessionID:        s.id,
		Username:         s.username,
		Owner:            s.owner,
		RemainingSeconds: s.remaining,
		Sorted:           s.sorted,
	}
}

// Shutdown ends the active session, if any
func (s *Session) Shutdown(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loggedInLocked() {
		s.endLocked(ctx, LogoutReasonShutdown)
	}
}

func (s *Session) loggedInLocked() bool {
	return s.username != ""
}

// startCountdownLocked cancels the running countdown, if any, and starts a
// new one from the idle limit
func (s *Session) startCountdownLocked() {
	s.stopCountdownLocked()

	s.remaining = s.config.IdleSeconds
	generation := s.generation
	s.countdown = s.scheduler.Every(s.config.TickInterval, func() {
		s.tick(generation)
	})
	s.observer.OnTick(s.remaining)
}

func (s *Session) stopCountdownLocked() {
	if s.countdown != nil {
		s.countdown.Cancel()
		s.countdown = nil
	}
	s.generation++
}

func (s *Session) tick(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedInLocked() || generation != s.generation {
		return
	}

	if s.remaining > 0 {
		s.remaining--
	}
	s.observer.OnTick(s.remaining)

	if s.remaining == 0 {
		s.endLocked(context.Background(), LogoutReasonExpired)
	}
}

// endLocked moves the session to logged out. The countdown and every pending
// loan grant of the account are cancelled whatever the reason.
func (s *Session) endLocked(ctx context.Context, reason string) {
	s.stopCountdownLocked()

	if cancelled := s.loans.CancelPending(ctx, s.username); cancelled > 0 {
		s.logger.InfoContext(ctx, "cancelled pending loans",
			slog.String("username", s.username),
			slog.Int("count", cancelled),
		)
	}

	sessionID, username := s.id, s.username
	s.id = uuid.Nil
	s.username = ""
	s.owner = ""
	s.sorted = false
	s.remaining = 0

	s.metrics.IncrementCounter("sessions_total", map[string]string{"event": reason})
	s.metrics.RecordGauge("active_sessions", 0, nil)
	s.auditLogger.LogLogout(ctx, sessionID, username, reason)
	s.observer.OnLogout(reason)
}

func (s *Session) refreshLocked(ctx context.Context) {
	snapshot, err := s.snapshotLocked()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build snapshot", slog.String("error", err.Error()))
		return
	}
	s.observer.OnRefresh(*snapshot)
}

func (s *Session) snapshotLocked() (*models.AccountSnapshot, error) {
	account, err := s.accountRepo.FindByUsername(s.username)
	if err != nil {
		return nil, fmt.Errorf("failed to get active account: %w", err)
	}

	snapshot := models.NewAccountSnapshot(account, s.sorted, s.scheduler.Now())
	return &snapshot, nil
}

// FirstName returns the first token of an owner name for greetings
func FirstName(owner string) string {
	fields := strings.Fields(owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
