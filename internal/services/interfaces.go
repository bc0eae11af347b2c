package services

import (
	"context"
	"time"

	"tradebot365-admin/internal/models"

	"github.com/google/uuid"
)

// AccountHierarchyServiceInterface serves the dashboard's User -> CSP Account -> Trading Account view
type AccountHierarchyServiceInterface interface {
	GetHierarchyPage(ctx context.Context, query models.AccountHierarchyQuery) (*models.AccountHierarchyPage, error)
	GetCounts(ctx context.Context, params models.FilterParams) (*models.AccountsOverview, error)
	GetUser(ctx context.Context, userID string) (*models.UserAccount, error)
	ImportRecords(ctx context.Context, records []models.FlatAccountRecord) (*models.ImportResult, error)
	Invalidate()
}

// AccountManager is the account-management collaborator that owns trading account mutations
type AccountManager interface {
	UpdateTradingAccount(ctx context.Context, tradingAccountID string, edit models.TradingAccountEdit) (*models.FlatAccountRecord, error)
	DeleteTradingAccount(ctx context.Context, tradingAccountID string) error
	ToggleConnection(ctx context.Context, tradingAccountID string) (*models.FlatAccountRecord, error)
}

// AccountActionServiceInterface forwards per-row actions of the hierarchy table to the AccountManager
type AccountActionServiceInterface interface {
	EditTradingAccount(ctx context.Context, tradingAccountID string, edit models.TradingAccountEdit, performedBy uuid.UUID, ipAddress, userAgent string) (*models.TradingAccount, error)
	DeleteTradingAccount(ctx context.Context, tradingAccountID string, performedBy uuid.UUID, ipAddress, userAgent string) error
	ToggleConnection(ctx context.Context, tradingAccountID string, performedBy uuid.UUID, ipAddress, userAgent string) (*models.TradingAccount, error)
	GetActivity(tradingAccountID string, offset, limit int) ([]*models.AuditLog, int64, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	LogTradingAccountAction(action, tradingAccountID string, performedBy uuid.UUID, ipAddress, userAgent string, metadata models.JSONBMap) error
	LogRecordsImported(action string, count int, performedBy uuid.UUID, ipAddress, userAgent string) error
	GetTradingAccountActivity(tradingAccountID string, offset, limit int) ([]*models.AuditLog, int64, error)
	PurgeOlderThan(retention time.Duration) (int64, error)
}

// AccountDataGeneratorInterface produces mock flat account rows for the dashboard
type AccountDataGeneratorInterface interface {
	GenerateRecords(opts models.MockDataOptions) []models.FlatAccountRecord
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID, email, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.DashboardClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type ActionLoggerInterface interface {
	LogActionForwarded(ctx context.Context, action, tradingAccountID string, durationMs int64)
	LogActionFailed(ctx context.Context, action, tradingAccountID, errorMsg string)
	LogConnectionToggled(ctx context.Context, tradingAccountID, newStatus string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogRecordsImported(ctx context.Context, received, hidden int)
	LogHierarchyInvalidated(ctx context.Context, reason string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
