package services

import (
	"context"
	"log/slog"
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey is the context key the transport stores the request trace
// ID under
const CorrelationIDKey contextKey = "correlation_id"

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogLogin(ctx context.Context, sessionID uuid.UUID, username string) {
	al.logger.InfoContext(ctx, "session started",
		slog.String("event_type", "session_login"),
		slog.String("session_id", sessionID.String()),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoginFailed(ctx context.Context, username string) {
	al.logger.WarnContext(ctx, "login failed",
		slog.String("event_type", "session_login_failed"),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLogout(ctx context.Context, sessionID uuid.UUID, username, reason string) {
	al.logger.InfoContext(ctx, "session ended",
		slog.String("event_type", "session_logout"),
		slog.String("session_id", sessionID.String()),
		slog.String("username", username),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferCompleted(ctx context.Context, transfer *models.Transfer, durationMs int64) {
	al.logger.InfoContext(ctx, "transfer completed",
		slog.String("event_type", "transfer_completed"),
		slog.String("transfer_id", transfer.ID.String()),
		slog.String("from_username", transfer.FromUsername),
		slog.String("to_username", transfer.ToUsername),
		slog.String("amount", transfer.Amount.String()),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferRejected(ctx context.Context, fromUsername, toUsername, amount, reason string) {
	al.logger.WarnContext(ctx, "transfer rejected",
		slog.String("event_type", "transfer_rejected"),
		slog.String("from_username", fromUsername),
		slog.String("to_username", toUsername),
		slog.String("amount", amount),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoanRequested(ctx context.Context, loan *models.Loan) {
	al.logger.InfoContext(ctx, "loan requested",
		slog.String("event_type", "loan_requested"),
		slog.String("loan_id", loan.ID.String()),
		slog.String("username", loan.Username),
		slog.String("amount", loan.Amount.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoanRejected(ctx context.Context, username, amount, reason string) {
	al.logger.WarnContext(ctx, "loan rejected",
		slog.String("event_type", "loan_rejected"),
		slog.String("username", username),
		slog.String("amount", amount),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoanGranted(ctx context.Context, loan *models.Loan) {
	attrs := []slog.Attr{
		slog.String("event_type", "loan_granted"),
		slog.String("loan_id", loan.ID.String()),
		slog.String("username", loan.Username),
		slog.String("amount", loan.Amount.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if loan.GrantedAt != nil {
		attrs = append(attrs, slog.Int64("delay_ms", loan.GrantedAt.Sub(loan.RequestedAt).Milliseconds()))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "loan granted", attrs...)
}

func (al *AuditLogger) LogLoanCancelled(ctx context.Context, loan *models.Loan) {
	al.logger.InfoContext(ctx, "loan cancelled",
		slog.String("event_type", "loan_cancelled"),
		slog.String("loan_id", loan.ID.String()),
		slog.String("username", loan.Username),
		slog.String("amount", loan.Amount.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAccountClosed(ctx context.Context, sessionID uuid.UUID, username string) {
	al.logger.WarnContext(ctx, "account closed",
		slog.String("event_type", "account_closed"),
		slog.String("session_id", sessionID.String()),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
