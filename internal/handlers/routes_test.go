package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bankist/internal/dto"
	"bankist/internal/repositories"
	"bankist/internal/scheduler"
	"bankist/internal/services"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite serves the full API over the in-memory store with a
// manual scheduler driving the idle countdown and loan grants
type RoutesTestSuite struct {
	suite.Suite
	sched       *scheduler.Manual
	accountRepo repositories.AccountRepositoryInterface
	hub         *EventHub
	server      *httptest.Server
}

// SetupTest runs before each test
func (s *RoutesTestSuite) SetupTest() {
	logger := discardLogger()
	pins := services.NewPinService(services.PinCost)

	s.sched = scheduler.NewManual(time.Date(2021, 4, 25, 10, 0, 0, 0, time.UTC))
	s.accountRepo = repositories.NewAccountRepository()
	s.Require().NoError(repositories.Seed(s.accountRepo, pins, repositories.DefaultSeedAccounts()))

	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	audit := services.NewAuditLogger(logger)
	transfers := services.NewTransferService(s.accountRepo, s.sched, audit, metrics, logger)
	loans := services.NewLoanService(s.accountRepo, repositories.NewLoanRepository(), s.sched, audit, metrics, services.DefaultLoanPolicy(), logger)

	formatter := NewFormatter(s.sched)
	s.hub = NewEventHub(formatter, []string{"*"}, 64, logger)
	session := services.NewSession(
		s.accountRepo,
		transfers,
		loans,
		pins,
		s.sched,
		s.hub,
		audit,
		metrics,
		services.DefaultSessionConfig(),
		logger,
	)

	e := newTestEcho()
	RegisterRoutes(e, Handlers{
		Session: NewSessionHandler(session, formatter, logger),
		Account: NewAccountHandler(session, logger),
		Events:  s.hub,
		Health:  NewHealthCheckHandler(s.accountRepo, session, s.sched),
	})
	s.server = httptest.NewServer(e)
}

// TearDownTest runs after each test
func (s *RoutesTestSuite) TearDownTest() {
	s.hub.Close()
	s.server.Close()
}

// TestRoutesTestSuite runs the test suite
func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func (s *RoutesTestSuite) do(method, path string, body interface{}, out interface{}) int {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *RoutesTestSuite) login(username, pin string) dto.LoginResponse {
	var resp dto.LoginResponse
	status := s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{Username: username, Pin: pin}, &resp)
	s.Require().Equal(http.StatusOK, status)
	return resp
}

func (s *RoutesTestSuite) snapshot() dto.SnapshotResponse {
	var resp dto.SnapshotResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/session/snapshot", nil, &resp))
	return resp
}

func (s *RoutesTestSuite) balanceOf(username string) string {
	account, err := s.accountRepo.FindByUsername(username)
	s.Require().NoError(err)
	return account.Balance().StringFixed(2)
}

func (s *RoutesTestSuite) TestLoginAndTransfer() {
	login := s.login("jd", "2222")
	s.Equal("Welcome back, Jessica", login.Session.Greeting)
	s.Equal(20, login.Session.RemainingSeconds)
	s.Equal("11720.00", login.Account.Balance.Amount)
	s.Len(login.Account.Movements, 8)

	var transfer dto.TransferResponse
	status := s.do(http.MethodPost, "/api/v1/transfers", map[string]interface{}{"to": "a", "amount": 200}, &transfer)
	s.Equal(http.StatusCreated, status)
	s.Equal("200.00", transfer.Amount)

	snapshot := s.snapshot()
	s.Equal("11520.00", snapshot.Balance.Amount)
	s.Len(snapshot.Movements, 9)
	s.Equal("withdrawal", snapshot.Movements[8].Type)
	s.Equal("Today", snapshot.Movements[8].DisplayDate)
	s.Equal("26152.59", s.balanceOf("a"))
}

func (s *RoutesTestSuite) TestErrorMapping() {
	var errResp ErrorResponse

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/transfers", map[string]interface{}{"to": "a", "amount": 1}, &errResp))
	s.Equal("SESSION_001", errResp.Error.Code)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{Username: "jd", Pin: "1111"}, &errResp))
	s.Equal("AUTH_001", errResp.Error.Code)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{Username: "zz", Pin: "2222"}, &errResp))
	s.Equal("AUTH_001", errResp.Error.Code)

	s.login("jd", "2222")

	testCases := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
		wantCode   string
	}{
		{"negative amount", map[string]interface{}{"to": "a", "amount": -5}, http.StatusBadRequest, "TRANSFER_006"},
		{"zero amount", map[string]interface{}{"to": "a", "amount": 0}, http.StatusBadRequest, "TRANSFER_006"},
		{"unknown recipient", map[string]interface{}{"to": "zz", "amount": 5}, http.StatusNotFound, "ACCOUNT_001"},
		{"self transfer", map[string]interface{}{"to": "jd", "amount": 5}, http.StatusBadRequest, "TRANSFER_001"},
		{"insufficient funds", map[string]interface{}{"to": "a", "amount": 11720.01}, http.StatusUnprocessableEntity, "TRANSFER_005"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var resp ErrorResponse
			s.Equal(tc.wantStatus, s.do(http.MethodPost, "/api/v1/transfers", tc.body, &resp))
			s.Equal(tc.wantCode, resp.Error.Code)
		})
	}

	s.Equal("11720.00", s.balanceOf("jd"))
	s.Equal("25952.59", s.balanceOf("a"))

	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodPost, "/api/v1/loans", map[string]interface{}{"amount": 90000}, &errResp))
	s.Equal("LOAN_002", errResp.Error.Code)
}

func (s *RoutesTestSuite) TestLoanGrantedAfterDelay() {
	s.login("jd", "2222")

	var loan dto.LoanResponse
	s.Equal(http.StatusAccepted, s.do(http.MethodPost, "/api/v1/loans", map[string]interface{}{"amount": 1000}, &loan))
	s.Equal("pending", loan.Status)

	s.sched.Advance(2 * time.Second)
	s.Equal("11720.00", s.snapshot().Balance.Amount)

	s.sched.Advance(time.Second)
	s.Equal("12720.00", s.snapshot().Balance.Amount)

	var state dto.SessionResponse
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/session", nil, &state))
	s.Equal(20, state.RemainingSeconds)
}

func (s *RoutesTestSuite) TestCancelLoanBeforeGrant() {
	s.login("a", "1111")

	var loan dto.LoanResponse
	s.Equal(http.StatusAccepted, s.do(http.MethodPost, "/api/v1/loans", map[string]interface{}{"amount": 1000}, &loan))
	path := "/api/v1/loans/" + loan.ID.String()

	s.sched.Advance(time.Second)
	s.Equal(http.StatusOK, s.do(http.MethodDelete, path, nil, nil))

	s.sched.Advance(5 * time.Second)
	s.Equal("25952.59", s.balanceOf("a"))

	var stored dto.LoanResponse
	s.Equal(http.StatusOK, s.do(http.MethodGet, path, nil, &stored))
	s.Equal("cancelled", stored.Status)
	s.NotNil(stored.CancelledAt)

	var errResp ErrorResponse
	s.Equal(http.StatusConflict, s.do(http.MethodDelete, path, nil, &errResp))
	s.Equal("LOAN_004", errResp.Error.Code)
}

func (s *RoutesTestSuite) TestToggleSort() {
	s.login("a", "1111")

	var sorted dto.SortResponse
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/session/sort", nil, &sorted))
	s.True(sorted.Sorted)
	s.Equal("-642.21", sorted.Account.Movements[0].Amount.Amount)
	s.Equal("25000.00", sorted.Account.Movements[7].Amount.Amount)

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/session/sort", nil, &sorted))
	s.False(sorted.Sorted)
	s.Equal("200.00", sorted.Account.Movements[0].Amount.Amount)
}

func (s *RoutesTestSuite) TestCloseAccount() {
	s.login("jd", "2222")

	var errResp ErrorResponse
	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodDelete, "/api/v1/accounts", dto.CloseAccountRequest{Username: "a", Pin: "1111"}, &errResp))
	s.Equal("ACCOUNT_005", errResp.Error.Code)

	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/api/v1/accounts", dto.CloseAccountRequest{Username: "jd", Pin: "2222"}, nil))

	var health dto.HealthResponse
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", nil, &health))
	s.Equal(1, health.Accounts)
	s.False(health.Session)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/session", dto.LoginRequest{Username: "jd", Pin: "2222"}, &errResp))
	s.Equal("AUTH_001", errResp.Error.Code)
}

func (s *RoutesTestSuite) TestIdleLogoutIsStreamed() {
	wsURL := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/api/v1/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	defer conn.Close()

	s.Require().Eventually(func() bool { return s.hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	s.login("jd", "2222")
	s.sched.Advance(20 * time.Second)

	var ticks []int
	var refreshed bool
	var logout dto.EventMessage
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for logout.Type == "" {
		var msg dto.EventMessage
		s.Require().NoError(conn.ReadJSON(&msg))

		switch msg.Type {
		case dto.EventTick:
			ticks = append(ticks, *msg.RemainingSeconds)
		case dto.EventRefresh:
			refreshed = true
			s.Equal("jd", msg.Account.Username)
		case dto.EventLogout:
			logout = msg
		}
	}

	s.True(refreshed)
	s.Len(ticks, 21)
	s.Equal(20, ticks[0])
	s.Equal(0, ticks[len(ticks)-1])
	s.Equal(services.LogoutReasonExpired, logout.Reason)

	var state dto.SessionResponse
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/session", nil, &state))
	s.False(state.LoggedIn)
}
