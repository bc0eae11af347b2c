package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"

	"github.com/google/uuid"
)

const (
	ActionEditTradingAccount   = "edit_trading_account"
	ActionDeleteTradingAccount = "delete_trading_account"
	ActionToggleConnection     = "toggle_connection"

	accountManagerService = "account_manager"
)

var (
	ErrTradingAccountNotFound  = errors.New("trading account not found")
	ErrInvalidTradingAccountID = errors.New("invalid trading account ID")
	ErrNoChanges               = errors.New("no changes to apply")
	ErrAccountManagerDown      = errors.New("account management is unavailable")
	ErrActionRejected          = errors.New("account management rejected the action")
)

// AccountActionService forwards edit, delete and toggle actions from the hierarchy table to the
// account-management collaborator. It owns none of the mutation logic; it validates the
// identifier, guards the collaborator with a circuit breaker, records the audit trail and
// drops the memoised hierarchy once the collaborator has applied a change.
type AccountActionService struct {
	manager        AccountManager
	hierarchy      AccountHierarchyServiceInterface
	auditService   AuditServiceInterface
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	logger         ActionLoggerInterface
}

// NewAccountActionService creates a new account action service
func NewAccountActionService(
	manager AccountManager,
	hierarchy AccountHierarchyServiceInterface,
	auditService AuditServiceInterface,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger ActionLoggerInterface,
) AccountActionServiceInterface {
	return &AccountActionService{
		manager:        manager,
		hierarchy:      hierarchy,
		auditService:   auditService,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
		logger:         logger,
	}
}

// EditTradingAccount forwards an edit of the trading account
func (s *AccountActionService) EditTradingAccount(ctx context.Context, tradingAccountID string, edit models.TradingAccountEdit, performedBy uuid.UUID, ipAddress, userAgent string) (*models.TradingAccount, error) {
	if edit.IsEmpty() {
		return nil, ErrNoChanges
	}
	if err := edit.Validate(); err != nil {
		return nil, err
	}

	var updated *models.FlatAccountRecord
	err := s.forward(ctx, ActionEditTradingAccount, tradingAccountID, func(id string) error {
		var err error
		updated, err = s.manager.UpdateTradingAccount(ctx, id, edit)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit(models.AuditActionTradingAccountUpdated, updated.TradingAccountID, performedBy, ipAddress, userAgent, models.JSONBMap(edit.Fields()))

	account := tradingAccountFromRecord(updated)
	return &account, nil
}

// DeleteTradingAccount forwards the removal of the trading account
func (s *AccountActionService) DeleteTradingAccount(ctx context.Context, tradingAccountID string, performedBy uuid.UUID, ipAddress, userAgent string) error {
	tradingAccountID = strings.TrimSpace(tradingAccountID)

	err := s.forward(ctx, ActionDeleteTradingAccount, tradingAccountID, func(id string) error {
		return s.manager.DeleteTradingAccount(ctx, id)
	})
	if err != nil {
		return err
	}

	s.audit(models.AuditActionTradingAccountDeleted, tradingAccountID, performedBy, ipAddress, userAgent, nil)
	return nil
}

// ToggleConnection forwards a connection toggle: Connected becomes Disconnected, anything else
// becomes Connected
func (s *AccountActionService) ToggleConnection(ctx context.Context, tradingAccountID string, performedBy uuid.UUID, ipAddress, userAgent string) (*models.TradingAccount, error) {
	var toggled *models.FlatAccountRecord
	err := s.forward(ctx, ActionToggleConnection, tradingAccountID, func(id string) error {
		var err error
		toggled, err = s.manager.ToggleConnection(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogConnectionToggled(ctx, toggled.TradingAccountID, toggled.Status)
	s.audit(models.AuditActionTradingAccountToggled, toggled.TradingAccountID, performedBy, ipAddress, userAgent,
		models.JSONBMap{"new_status": toggled.Status})

	account := tradingAccountFromRecord(toggled)
	return &account, nil
}

// GetActivity returns the audit trail of a trading account
func (s *AccountActionService) GetActivity(tradingAccountID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	tradingAccountID = strings.TrimSpace(tradingAccountID)
	if tradingAccountID == "" {
		return nil, 0, ErrInvalidTradingAccountID
	}
	return s.auditService.GetTradingAccountActivity(tradingAccountID, offset, limit)
}

// forward runs call against the collaborator behind the circuit breaker. Only collaborator
// failures count against the breaker; not-found and validation errors do not.
func (s *AccountActionService) forward(ctx context.Context, action, tradingAccountID string, call func(id string) error) error {
	tradingAccountID = strings.TrimSpace(tradingAccountID)
	if tradingAccountID == "" {
		return ErrInvalidTradingAccountID
	}

	if s.circuitBreaker.IsOpen() {
		s.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
			"service": accountManagerService,
		})
		s.metrics.IncrementCounter("account_action", map[string]string{"action": action, "status": "unavailable"})
		s.logger.LogActionFailed(ctx, action, tradingAccountID, ErrCircuitBreakerOpen.Error())
		return ErrAccountManagerDown
	}

	start := time.Now()
	err := call(tradingAccountID)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime(action, duration)

	if err != nil {
		mapped, collaboratorFailure := mapManagerError(err)
		if collaboratorFailure {
			s.circuitBreaker.RecordFailure()
		} else {
			s.circuitBreaker.RecordSuccess()
		}

		s.metrics.IncrementCounter("account_action", map[string]string{"action": action, "status": "failed"})
		s.logger.LogActionFailed(ctx, action, tradingAccountID, err.Error())
		return mapped
	}

	s.circuitBreaker.RecordSuccess()
	s.hierarchy.Invalidate()
	s.metrics.IncrementCounter("account_action", map[string]string{"action": action, "status": "success"})
	s.logger.LogActionForwarded(ctx, action, tradingAccountID, duration.Milliseconds())

	return nil
}

// mapManagerError translates collaborator errors into service errors. Errors it does not know
// are wrapped and reported as collaborator failures.
func mapManagerError(err error) (error, bool) {
	switch {
	case errors.Is(err, repositories.ErrTradingAccountNotFound):
		return ErrTradingAccountNotFound, false
	case errors.Is(err, repositories.ErrNoChanges):
		return ErrNoChanges, false
	case errors.Is(err, models.ErrInvalidBalance), errors.Is(err, models.ErrInvalidConnectionStatus),
		errors.Is(err, ErrActionRejected):
		return err, false
	default:
		return fmt.Errorf("account manager: %w", err), true
	}
}

// audit writes the audit trail entry. A failure is logged and does not undo the action.
func (s *AccountActionService) audit(action, tradingAccountID string, performedBy uuid.UUID, ipAddress, userAgent string, metadata models.JSONBMap) {
	if err := s.auditService.LogTradingAccountAction(action, tradingAccountID, performedBy, ipAddress, userAgent, metadata); err != nil {
		slog.Warn("Failed to write audit log", "action", action, "trading_account_id", tradingAccountID, "error", err)
	}
}

func tradingAccountFromRecord(r *models.FlatAccountRecord) models.TradingAccount {
	return newTradingAccount(r)
}
