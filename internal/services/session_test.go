package services

import (
	"context"
	"testing"
	"time"

	"bankist/internal/models"
	"bankist/internal/repositories"
	"bankist/internal/scheduler"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SessionTestSuite drives a session on the in-memory store and a manual
// scheduler
type SessionTestSuite struct {
	suite.Suite
	accountRepo repositories.AccountRepositoryInterface
	loans       LoanServiceInterface
	sched       *scheduler.Manual
	observer    *recordingObserver
	metrics     *recordingMetrics
	session     *Session
	ctx         context.Context
}

// SetupTest runs before each test
func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	pins := fastPins()
	s.accountRepo = repositories.NewAccountRepository()
	s.Require().NoError(repositories.Seed(s.accountRepo, pins, repositories.DefaultSeedAccounts()))
	s.sched = scheduler.NewManual(time.Date(2021, 4, 25, 10, 0, 0, 0, time.UTC))
	s.observer = &recordingObserver{}
	s.metrics = newRecordingMetrics()

	audit := NewAuditLogger(discardLogger())
	transfers := NewTransferService(s.accountRepo, s.sched, audit, s.metrics, discardLogger())
	s.loans = NewLoanService(s.accountRepo, repositories.NewLoanRepository(), s.sched, audit, s.metrics, DefaultLoanPolicy(), discardLogger())

	s.session = NewSession(
		s.accountRepo,
		transfers,
		s.loans,
		pins,
		s.sched,
		s.observer,
		audit,
		s.metrics,
		DefaultSessionConfig(),
		discardLogger(),
	)
}

// TestSessionTestSuite runs the test suite
func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) login(username, pin string) *models.AccountSnapshot {
	snapshot, err := s.session.Login(s.ctx, username, pin)
	s.Require().NoError(err)
	return snapshot
}

func (s *SessionTestSuite) account(username string) *models.Account {
	account, err := s.accountRepo.FindByUsername(username)
	s.Require().NoError(err)
	return account
}

func (s *SessionTestSuite) assertBalancesConsistent() {
	for _, account := range s.accountRepo.List() {
		s.True(account.Balance().Equal(decimal.Sum(decimal.Zero, account.Movements...)))
		s.Len(account.MovementDates, len(account.Movements))
	}
}

func (s *SessionTestSuite) TestLogin() {
	snapshot := s.login("jd", "2222")

	s.Equal("11720", snapshot.Balance.String())
	s.Equal("16900", snapshot.Income.String())
	s.Equal("-5180", snapshot.Expense.String())
	s.False(snapshot.Sorted)

	state := s.session.State()
	s.True(state.LoggedIn)
	s.Equal("jd", state.Username)
	s.Equal("Jessica Davis", state.Owner)
	s.Equal(20, state.RemainingSeconds)
	s.NotEqual(uuid.Nil, state.SessionID)

	s.Equal([]int{20}, s.observer.tickValues())
	s.Equal("jd", s.observer.lastRefresh().Username)
	s.Equal(1.0, s.metrics.gauge("active_sessions"))
	s.assertBalancesConsistent()
}

func (s *SessionTestSuite) TestLogin_NumericPin() {
	s.login("a", " 1111")
	s.True(s.session.State().LoggedIn)
}

func (s *SessionTestSuite) TestLogin_Failure() {
	testCases := []struct {
		name     string
		username string
		pin      string
	}{
		{"unknown username", "zz", "1111"},
		{"wrong pin", "jd", "1111"},
		{"non numeric pin", "jd", "abcd"},
		{"case sensitive username", "JD", "2222"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			snapshot, err := s.session.Login(s.ctx, tc.username, tc.pin)

			s.ErrorIs(err, ErrAuthFailure)
			s.Nil(snapshot)
			s.False(s.session.State().LoggedIn)
		})
	}

	s.Equal(len(testCases), s.metrics.count("sessions_total.login_failed"))
}

func (s *SessionTestSuite) TestLogin_ReplacesActiveSession() {
	s.login("jd", "2222")
	first := s.session.State().SessionID
	_, err := s.session.RequestLoan(s.ctx, decimal.NewFromInt(1000))
	s.Require().NoError(err)

	s.login("a", "1111")

	state := s.session.State()
	s.Equal("a", state.Username)
	s.NotEqual(first, state.SessionID)
	s.Equal([]string{LogoutReasonReplaced}, s.observer.logoutReasons())

	s.sched.Advance(5 * time.Second)
	s.Len(s.account("jd").Movements, 8, "pending grant of the replaced session must not post")
	s.Equal(15, s.session.State().RemainingSeconds)
}

func (s *SessionTestSuite) TestCountdown_ExpiresAfterIdleLimit() {
	s.login("jd", "2222")

	s.sched.Advance(19 * time.Second)
	s.True(s.session.State().LoggedIn)
	s.Equal(1, s.session.State().RemainingSeconds)

	s.sched.Advance(time.Second)
	s.False(s.session.State().LoggedIn)
	s.Equal([]string{LogoutReasonExpired}, s.observer.logoutReasons())

	s.sched.Advance(time.Minute)
	s.Equal([]string{LogoutReasonExpired}, s.observer.logoutReasons(), "expiry must happen exactly once")

	ticks := s.observer.tickValues()
	s.Len(ticks, 21)
	for i, remaining := range ticks {
		s.Equal(20-i, remaining)
		s.GreaterOrEqual(remaining, 0)
	}
	s.Equal(0, s.sched.Pending())
	s.Equal(1, s.metrics.count("sessions_total.expired"))
	s.Equal(0.0, s.metrics.gauge("active_sessions"))
}

func (s *SessionTestSuite) TestTransfer_ResetsCountdown() {
	s.login("jd", "2222")
	s.sched.Advance(15 * time.Second)

	transfer, err := s.session.Transfer(s.ctx, "a", decimal.NewFromInt(200))
	s.Require().NoError(err)
	s.Equal(s.sched.Now(), transfer.PostedAt)
	s.Equal(20, s.session.State().RemainingSeconds)
	s.Equal("11520", s.observer.lastRefresh().Balance.String())

	s.sched.Advance(19 * time.Second)
	s.True(s.session.State().LoggedIn)
	s.Equal(1, s.session.State().RemainingSeconds)

	s.sched.Advance(time.Second)
	s.False(s.session.State().LoggedIn)
	s.Equal([]string{LogoutReasonExpired}, s.observer.logoutReasons())
	s.assertBalancesConsistent()
}

func (s *SessionTestSuite) TestTransfer_RejectedDoesNotResetCountdown() {
	s.login("jd", "2222")
	s.sched.Advance(5 * time.Second)
	refreshes := len(s.observer.refreshes)

	_, err := s.session.Transfer(s.ctx, "a", decimal.NewFromInt(-5))
	s.ErrorIs(err, ErrInvalidAmount)
	_, err = s.session.Transfer(s.ctx, "jd", decimal.NewFromInt(5))
	s.ErrorIs(err, ErrSameAccountTransfer)
	_, err = s.session.Transfer(s.ctx, "zz", decimal.NewFromInt(5))
	s.ErrorIs(err, ErrRecipientNotFound)
	_, err = s.session.Transfer(s.ctx, "a", decimal.NewFromInt(11721))
	s.ErrorIs(err, ErrInsufficientFunds)

	s.Equal(15, s.session.State().RemainingSeconds)
	s.Len(s.observer.refreshes, refreshes)
	s.Len(s.account("jd").Movements, 8)
	s.Len(s.account("a").Movements, 8)
}

func (s *SessionTestSuite) TestRequestLoan_GrantResetsCountdown() {
	s.login("a", "1111")
	before := s.account("a").Balance()

	loan, err := s.session.RequestLoan(s.ctx, decimal.NewFromInt(1000))
	s.Require().NoError(err)
	s.True(loan.IsPending())
	s.Equal(20, s.session.State().RemainingSeconds)

	s.sched.Advance(3 * time.Second)

	after := s.account("a")
	s.True(before.Add(decimal.NewFromInt(1000)).Equal(after.Balance()))
	s.Equal(s.sched.Now(), after.MovementDates[len(after.MovementDates)-1])
	s.Equal(20, s.session.State().RemainingSeconds)
	s.True(s.observer.lastRefresh().Balance.Equal(after.Balance()))
	s.assertBalancesConsistent()
}

func (s *SessionTestSuite) TestRequestLoan_InvalidNeverMutates() {
	s.login("jd", "2222")

	for i := 0; i < 2; i++ {
		_, err := s.session.RequestLoan(s.ctx, decimal.NewFromInt(1_000_000))
		s.ErrorIs(err, ErrLoanNotFundable)
	}

	s.sched.Advance(10 * time.Second)
	s.Len(s.account("jd").Movements, 8)
	s.Equal(10, s.session.State().RemainingSeconds)
}

func (s *SessionTestSuite) TestCancelLoan() {
	s.ErrorIs(s.session.CancelLoan(s.ctx, uuid.New()), ErrNoActiveSession)

	s.login("a", "1111")
	loan, err := s.session.RequestLoan(s.ctx, decimal.NewFromInt(1000))
	s.Require().NoError(err)

	s.Require().NoError(s.session.CancelLoan(s.ctx, loan.ID))
	s.sched.Advance(5 * time.Second)

	s.Len(s.account("a").Movements, 8)
	stored, err := s.session.Loan(loan.ID)
	s.Require().NoError(err)
	s.True(stored.IsCancelled())

	s.ErrorIs(s.session.CancelLoan(s.ctx, loan.ID), ErrLoanNotPending)
	s.ErrorIs(s.session.CancelLoan(s.ctx, uuid.New()), ErrLoanNotFound)
	s.Equal(15, s.session.State().RemainingSeconds)
}

func (s *SessionTestSuite) TestLoan_HidesOtherAccounts() {
	s.login("a", "1111")
	loan, err := s.session.RequestLoan(s.ctx, decimal.NewFromInt(1000))
	s.Require().NoError(err)

	s.login("jd", "2222")

	_, err = s.session.Loan(loan.ID)
	s.ErrorIs(err, ErrLoanNotFound)
	s.ErrorIs(s.session.CancelLoan(s.ctx, loan.ID), ErrLoanNotFound)
}

func (s *SessionTestSuite) TestPendingLoanCancelledOnSessionEnd() {
	testCases := []struct {
		name   string
		end    func()
		reason string
	}{
		{
			name:   "logout",
			end:    func() { s.Require().NoError(s.session.Logout(s.ctx)) },
			reason: LogoutReasonManual,
		},
		{
			name:   "expiry",
			end:    func() { s.sched.Advance(20 * time.Second) },
			reason: LogoutReasonExpired,
		},
		{
			name:   "shutdown",
			end:    func() { s.session.Shutdown(s.ctx) },
			reason: LogoutReasonShutdown,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.login("a", "1111")
			// expiry at 20s must beat a grant due at 21s
			s.sched.Advance(18 * time.Second)

			loan, err := s.session.RequestLoan(s.ctx, decimal.NewFromInt(1000))
			s.Require().NoError(err)

			tc.end()
			s.sched.Advance(10 * time.Second)

			s.Equal([]string{tc.reason}, s.observer.logoutReasons())
			s.Len(s.account("a").Movements, 8)
			stored, err := s.loans.GetLoan(loan.ID)
			s.Require().NoError(err)
			s.True(stored.IsCancelled())
		})
	}
}

func (s *SessionTestSuite) TestLogout() {
	s.ErrorIs(s.session.Logout(s.ctx), ErrNoActiveSession)

	s.login("jd", "2222")
	s.Require().NoError(s.session.Logout(s.ctx))

	s.False(s.session.State().LoggedIn)
	s.Equal(0, s.sched.Pending())
	s.ErrorIs(s.session.Logout(s.ctx), ErrNoActiveSession)

	_, err := s.session.Snapshot()
	s.ErrorIs(err, ErrNoActiveSession)
	_, err = s.session.Transfer(s.ctx, "a", decimal.NewFromInt(1))
	s.ErrorIs(err, ErrNoActiveSession)
	_, err = s.session.RequestLoan(s.ctx, decimal.NewFromInt(1))
	s.ErrorIs(err, ErrNoActiveSession)
	_, err = s.session.ToggleSort(s.ctx)
	s.ErrorIs(err, ErrNoActiveSession)
}

func (s *SessionTestSuite) TestCloseAccount() {
	s.login("jd", "2222")
	_, err := s.session.RequestLoan(s.ctx, decimal.NewFromInt(1000))
	s.Require().NoError(err)

	s.Run("rejects mismatched credentials", func() {
		s.ErrorIs(s.session.CloseAccount(s.ctx, "a", "1111"), ErrCloseRejected)
		s.ErrorIs(s.session.CloseAccount(s.ctx, "jd", "1111"), ErrCloseRejected)
		s.ErrorIs(s.session.CloseAccount(s.ctx, "jd", "nope"), ErrCloseRejected)
		s.True(s.session.State().LoggedIn)
		s.Equal(2, s.accountRepo.Count())
	})

	s.Run("removes the active account", func() {
		s.Require().NoError(s.session.CloseAccount(s.ctx, "jd", "2222"))

		s.False(s.session.State().LoggedIn)
		_, err := s.accountRepo.FindByUsername("jd")
		s.ErrorIs(err, repositories.ErrAccountNotFound)
		s.Equal([]string{LogoutReasonClosed}, s.observer.logoutReasons())

		s.sched.Advance(time.Minute)
		s.Equal(0, s.sched.Pending())
		s.Equal(1, s.accountRepo.Count())
	})

	s.Run("requires a session", func() {
		s.ErrorIs(s.session.CloseAccount(s.ctx, "jd", "2222"), ErrNoActiveSession)
		_, err := s.session.Login(s.ctx, "jd", "2222")
		s.ErrorIs(err, ErrAuthFailure)
	})
}

func (s *SessionTestSuite) TestToggleSort() {
	s.login("a", "1111")

	sorted, err := s.session.ToggleSort(s.ctx)
	s.Require().NoError(err)
	s.True(sorted)

	snapshot, err := s.session.Snapshot()
	s.Require().NoError(err)
	s.True(snapshot.Sorted)
	s.Equal("-642.21", snapshot.Movements[0].String())
	s.Equal("25000", snapshot.Movements[len(snapshot.Movements)-1].String())
	s.Equal("2020-05-08T14:11:59.604Z", snapshot.MovementDates[0].Format(time.RFC3339Nano))
	s.True(s.observer.lastRefresh().Sorted)

	s.Equal("200", s.account("a").Movements[0].String(), "store keeps chronological order")
	s.Equal(20, s.session.State().RemainingSeconds, "sorting is not activity")

	sorted, err = s.session.ToggleSort(s.ctx)
	s.Require().NoError(err)
	s.False(sorted)
}

func (s *SessionTestSuite) TestSnapshot_Interest() {
	s.login("a", "1111")

	snapshot, err := s.session.Snapshot()
	s.Require().NoError(err)

	// 200, 455.23, 25000 and 1300 earn 1.2%; 79.97 earns 0.96 and is dropped
	s.Equal("25952.59", snapshot.Balance.String())
	s.Equal("323.46", snapshot.Interest.StringFixed(2))
}

func TestFirstName(t *testing.T) {
	for owner, expected := range map[string]string{
		"Jessica Davis": "Jessica",
		"admin":         "admin",
		"  ":            "",
	} {
		if got := FirstName(owner); got != expected {
			t.Errorf("FirstName(%q) = %q, want %q", owner, got, expected)
		}
	}
}
