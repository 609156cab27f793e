package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AuditLoggerTestSuite checks the structured audit lines
type AuditLoggerTestSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	logger AuditLoggerInterface
	ctx    context.Context
}

// SetupTest runs before each test
func (s *AuditLoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.logger = NewAuditLogger(slog.New(slog.NewJSONHandler(s.buf, nil)))
	s.ctx = context.WithValue(context.Background(), CorrelationIDKey, "trace-123")
}

// TestAuditLoggerTestSuite runs the test suite
func TestAuditLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLoggerTestSuite))
}

func (s *AuditLoggerTestSuite) entries() []map[string]interface{} {
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(s.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		s.Require().NoError(json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func (s *AuditLoggerTestSuite) TestLogLogin() {
	sessionID := uuid.New()
	s.logger.LogLogin(s.ctx, sessionID, "jd")

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal("session_login", entries[0]["event_type"])
	s.Equal(sessionID.String(), entries[0]["session_id"])
	s.Equal("jd", entries[0]["username"])
	s.Equal("trace-123", entries[0]["correlation_id"])
	s.Equal("INFO", entries[0]["level"])
}

func (s *AuditLoggerTestSuite) TestLogLoginFailed_IsWarning() {
	s.logger.LogLoginFailed(context.Background(), "zz")

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal("WARN", entries[0]["level"])
	s.Equal("", entries[0]["correlation_id"])
}

func (s *AuditLoggerTestSuite) TestLogTransferCompleted_AmountAsString() {
	transfer := models.NewTransfer("jd", "a", decimal.RequireFromString("200.50"), time.Now())
	s.logger.LogTransferCompleted(s.ctx, transfer, 3)

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal("transfer_completed", entries[0]["event_type"])
	s.Equal("200.5", entries[0]["amount"])
	s.Equal(transfer.ID.String(), entries[0]["transfer_id"])
}

func (s *AuditLoggerTestSuite) TestLoanLifecycle() {
	loan := models.NewLoan("a", decimal.NewFromInt(1000), time.Now())

	s.logger.LogLoanRequested(s.ctx, loan)
	s.logger.LogLoanGranted(s.ctx, loan)
	s.logger.LogLoanCancelled(s.ctx, loan)

	var events []interface{}
	for _, entry := range s.entries() {
		events = append(events, entry["event_type"])
		s.Equal(loan.ID.String(), entry["loan_id"])
	}
	s.Equal([]interface{}{"loan_requested", "loan_granted", "loan_cancelled"}, events)
}

func (s *AuditLoggerTestSuite) TestNeverLogsPins() {
	s.logger.LogLoginFailed(s.ctx, "jd")
	s.logger.LogAccountClosed(s.ctx, uuid.New(), "jd")

	s.NotContains(s.buf.String(), "pin")
}
