package repositories

import (
	"context"
	"time"

	"tradebot365-admin/internal/models"
)

// AccountRecordRepositoryInterface defines the contract for flat account record storage
type AccountRecordRepositoryInterface interface {
	ListAll(ctx context.Context) ([]models.FlatAccountRecord, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, records []models.FlatAccountRecord) error
	GetByTradingAccountID(ctx context.Context, tradingAccountID string) (*models.FlatAccountRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]models.FlatAccountRecord, error)
	UpdateTradingAccount(ctx context.Context, tradingAccountID string, edit models.TradingAccountEdit) (*models.FlatAccountRecord, error)
	DeleteTradingAccount(ctx context.Context, tradingAccountID string) error
	ToggleConnection(ctx context.Context, tradingAccountID string) (*models.FlatAccountRecord, error)
	SyncTradingAccount(ctx context.Context, record *models.FlatAccountRecord) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
