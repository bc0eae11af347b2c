package services

import (
	"context"
	"errors"
	"log/slog"

	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"
)

// WriteThroughAccountManager forwards actions to the remote account-management API and mirrors
// every accepted change into the local record store the hierarchy is built from
type WriteThroughAccountManager struct {
	remote AccountManager
	store  repositories.AccountRecordRepositoryInterface
	logger *slog.Logger
}

// NewWriteThroughAccountManager wraps remote so its results reach the local record store
func NewWriteThroughAccountManager(remote AccountManager, store repositories.AccountRecordRepositoryInterface, logger *slog.Logger) AccountManager {
	if logger == nil {
		logger = slog.Default()
	}

	return &WriteThroughAccountManager{
		remote: remote,
		store:  store,
		logger: logger,
	}
}

func (m *WriteThroughAccountManager) UpdateTradingAccount(ctx context.Context, tradingAccountID string, edit models.TradingAccountEdit) (*models.FlatAccountRecord, error) {
	record, err := m.remote.UpdateTradingAccount(ctx, tradingAccountID, edit)
	if err != nil {
		return nil, err
	}

	m.mirror(ctx, tradingAccountID, record)
	return record, nil
}

func (m *WriteThroughAccountManager) DeleteTradingAccount(ctx context.Context, tradingAccountID string) error {
	if err := m.remote.DeleteTradingAccount(ctx, tradingAccountID); err != nil {
		return err
	}

	err := m.store.DeleteTradingAccount(ctx, tradingAccountID)
	if err != nil && !errors.Is(err, repositories.ErrTradingAccountNotFound) {
		m.logger.ErrorContext(ctx, "failed to mirror trading account deletion",
			"trading_account_id", tradingAccountID,
			"trace_id", TraceIDFromContext(ctx),
			"error", err,
		)
	}
	return nil
}

func (m *WriteThroughAccountManager) ToggleConnection(ctx context.Context, tradingAccountID string) (*models.FlatAccountRecord, error) {
	record, err := m.remote.ToggleConnection(ctx, tradingAccountID)
	if err != nil {
		return nil, err
	}

	m.mirror(ctx, tradingAccountID, record)
	return record, nil
}

// mirror stores the row returned by the remote API. The remote action already happened, so a
// local failure is logged and not returned.
func (m *WriteThroughAccountManager) mirror(ctx context.Context, tradingAccountID string, record *models.FlatAccountRecord) {
	row := *record
	if row.TradingAccountID == "" {
		row.TradingAccountID = tradingAccountID
	}

	if err := m.store.SyncTradingAccount(ctx, &row); err != nil {
		m.logger.ErrorContext(ctx, "failed to mirror trading account",
			"trading_account_id", row.TradingAccountID,
			"trace_id", TraceIDFromContext(ctx),
			"error", err,
		)
	}
}
