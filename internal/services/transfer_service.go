package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bankist/internal/models"
	"bankist/internal/repositories"
	"bankist/internal/scheduler"

	"github.com/shopspring/decimal"
)

type transferService struct {
	accountRepo repositories.AccountRepositoryInterface
	clock       scheduler.Clock
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewTransferService creates a new transfer service
func NewTransferService(
	accountRepo repositories.AccountRepositoryInterface,
	clock scheduler.Clock,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransferServiceInterface {
	return &transferService{
		accountRepo: accountRepo,
		clock:       clock,
		auditLogger: auditLogger,
		metrics:     metrics,
		logger:      logger,
	}
}

// Transfer moves amount from one account to another. Preconditions are
// checked in a fixed order and the first violated one is returned; a
// rejected transfer records nothing.
func (s *transferService) Transfer(ctx context.Context, fromUsername, toUsername string, amount decimal.Decimal) (*models.Transfer, error) {
	startTime := time.Now()

	if err := s.validateTransferRequest(fromUsername, toUsername, amount); err != nil {
		s.handleTransferRejection(ctx, fromUsername, toUsername, amount, err)
		return nil, err
	}

	transfer, err := s.accountRepo.ExecuteAtomicTransfer(fromUsername, toUsername, amount, s.clock.Now())
	if err != nil {
		s.logger.WarnContext(ctx, "store rejected transfer posting",
			slog.String("from_username", fromUsername),
			slog.String("to_username", toUsername),
			slog.String("error", err.Error()),
		)
		err = mapTransferError(err)
		s.handleTransferRejection(ctx, fromUsername, toUsername, amount, err)
		return nil, err
	}

	duration := time.Since(startTime)
	s.metrics.IncrementCounter("transfers_total", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("transfer_duration", duration)
	s.metrics.RecordGauge("transfer_amount", amount.InexactFloat64(), nil)
	s.auditLogger.LogTransferCompleted(ctx, transfer, duration.Milliseconds())

	return transfer, nil
}

func (s *transferService) validateTransferRequest(fromUsername, toUsername string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if _, err := s.accountRepo.FindByUsername(toUsername); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrRecipientNotFound
		}
		return fmt.Errorf("failed to get destination account: %w", err)
	}

	if fromUsername == toUsername {
		return ErrSameAccountTransfer
	}

	from, err := s.accountRepo.FindByUsername(fromUsername)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to get source account: %w", err)
	}

	if !from.CanWithdraw(amount) {
		return ErrInsufficientFunds
	}

	return nil
}

func (s *transferService) handleTransferRejection(ctx context.Context, fromUsername, toUsername string, amount decimal.Decimal, err error) {
	s.metrics.IncrementCounter("transfers_total", map[string]string{"status": "rejected"})
	s.auditLogger.LogTransferRejected(ctx, fromUsername, toUsername, amount.String(), err.Error())
}

// mapTransferError translates store errors raised while posting
func mapTransferError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrRecipientNotFound
	case errors.Is(err, models.ErrSameTransferAccounts):
		return ErrSameAccountTransfer
	case errors.Is(err, models.ErrInvalidTransferAmount):
		return ErrInvalidAmount
	default:
		return fmt.Errorf("failed to execute transfer: %w", err)
	}
}
