package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tradebot365-admin/internal/models"

	"gorm.io/gorm"
)

const createBatchSize = 200

var (
	ErrTradingAccountNotFound = errors.New("trading account not found")
	ErrNoChanges              = errors.New("no changes to apply")
)

// accountRecordRepository stores flat account rows. It is also the bundled account-management
// collaborator that applies edit, delete and toggle actions.
type accountRecordRepository struct {
	db *gorm.DB
}

// NewAccountRecordRepository creates a new account record repository
func NewAccountRecordRepository(db *gorm.DB) AccountRecordRepositoryInterface {
	return &accountRecordRepository{
		db: db,
	}
}

func (r *accountRecordRepository) withTx(tx *gorm.DB) *accountRecordRepository {
	return &accountRecordRepository{db: tx}
}

// ListAll returns every record in insertion order
func (r *accountRecordRepository) ListAll(ctx context.Context) ([]models.FlatAccountRecord, error) {
	var records []models.FlatAccountRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list account records: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records
func (r *accountRecordRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.FlatAccountRecord{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count account records: %w", err)
	}
	return total, nil
}

// CreateBatch inserts records in one transaction, keeping their order
func (r *accountRecordRepository) CreateBatch(ctx context.Context, records []models.FlatAccountRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&records, createBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create account records: %w", err)
		}
		return nil
	})
}

// GetByTradingAccountID retrieves the first record holding the trading account
func (r *accountRecordRepository) GetByTradingAccountID(ctx context.Context, tradingAccountID string) (*models.FlatAccountRecord, error) {
	var record models.FlatAccountRecord
	if err := r.db.WithContext(ctx).
		Where("trading_account_id = ?", tradingAccountID).
		Order("id ASC").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTradingAccountNotFound
		}
		return nil, fmt.Errorf("failed to get trading account: %w", err)
	}
	return &record, nil
}

// GetByUserID retrieves all records of a user in insertion order
func (r *accountRecordRepository) GetByUserID(ctx context.Context, userID string) ([]models.FlatAccountRecord, error) {
	var records []models.FlatAccountRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get account records for user: %w", err)
	}
	return records, nil
}

// UpdateTradingAccount applies edit to every row of the trading account and returns the first row
func (r *accountRecordRepository) UpdateTradingAccount(ctx context.Context, tradingAccountID string, edit models.TradingAccountEdit) (*models.FlatAccountRecord, error) {
	if edit.IsEmpty() {
		return nil, ErrNoChanges
	}
	if err := edit.Validate(); err != nil {
		return nil, err
	}

	fields := edit.Fields()
	fields["updated_at"] = time.Now()

	var updated models.FlatAccountRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FlatAccountRecord{}).
			Where("trading_account_id = ?", tradingAccountID).
			UpdateColumns(fields)
		if result.Error != nil {
			return fmt.Errorf("failed to update trading account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTradingAccountNotFound
		}

		if err := tx.Where("trading_account_id = ?", tradingAccountID).Order("id ASC").First(&updated).Error; err != nil {
			return fmt.Errorf("failed to reload trading account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteTradingAccount removes every row of the trading account
func (r *accountRecordRepository) DeleteTradingAccount(ctx context.Context, tradingAccountID string) error {
	result := r.db.WithContext(ctx).
		Where("trading_account_id = ?", tradingAccountID).
		Delete(&models.FlatAccountRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete trading account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTradingAccountNotFound
	}
	return nil
}

// ToggleConnection flips the connection status of the trading account
func (r *accountRecordRepository) ToggleConnection(ctx context.Context, tradingAccountID string) (*models.FlatAccountRecord, error) {
	var toggled models.FlatAccountRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.withTx(tx).GetByTradingAccountID(ctx, tradingAccountID)
		if err != nil {
			return err
		}

		next := string(models.ToggledConnectionStatus(current.Status))
		if err := tx.Model(&models.FlatAccountRecord{}).
			Where("trading_account_id = ?", tradingAccountID).
			UpdateColumns(map[string]interface{}{"status": next, "updated_at": time.Now()}).Error; err != nil {
			return fmt.Errorf("failed to toggle connection: %w", err)
		}

		current.Status = next
		toggled = *current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &toggled, nil
}

// SyncTradingAccount mirrors a trading account row owned by another system. The trading
// account columns of every stored row are overwritten; a trading account not stored yet is
// inserted as a new row.
func (r *accountRecordRepository) SyncTradingAccount(ctx context.Context, record *models.FlatAccountRecord) error {
	if record == nil || record.TradingAccountID == "" {
		return models.ErrMissingTradingAccountID
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := r.withTx(tx).GetByTradingAccountID(ctx, record.TradingAccountID)
		if errors.Is(err, ErrTradingAccountNotFound) {
			row := *record
			row.ID = 0
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert synced trading account: %w", err)
			}
			return nil
		}
		if err != nil {
			return err
		}

		fields := map[string]interface{}{
			"trading_account_number": record.TradingAccountNumber,
			"trading_account_type":   record.TradingAccountType,
			"balance":                record.Balance,
			"is_live":                record.IsLive,
			"updated_at":             time.Now(),
		}
		if record.Status != "" {
			fields["status"] = record.Status
		}

		if err := tx.Model(&models.FlatAccountRecord{}).
			Where("trading_account_id = ?", record.TradingAccountID).
			UpdateColumns(fields).Error; err != nil {
			return fmt.Errorf("failed to sync trading account: %w", err)
		}
		return nil
	})
}
