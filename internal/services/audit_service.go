package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditLog       = errors.New("invalid audit log")
	ErrInvalidRetention      = errors.New("retention must be positive")
	ErrInvalidTradingAccount = errors.New("trading account ID is required")
)

var tradingAccountActions = map[string]bool{
	models.AuditActionTradingAccountUpdated: true,
	models.AuditActionTradingAccountDeleted: true,
	models.AuditActionTradingAccountToggled: true,
}

var recordActions = map[string]bool{
	models.AuditActionAccountRecordsImported: true,
	models.AuditActionMockRecordsGenerated:   true,
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	if !tradingAccountActions[action] && !recordActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// LogTradingAccountAction logs an edit, delete or toggle of a trading account
func (s *AuditService) LogTradingAccountAction(action, tradingAccountID string, performedBy uuid.UUID, ipAddress, userAgent string, metadata models.JSONBMap) error {
	if !tradingAccountActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}

	log := &models.AuditLog{
		Action:     action,
		Resource:   models.AuditResourceTradingAccount,
		ResourceID: tradingAccountID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}
	if performedBy != uuid.Nil {
		log.ActorID = &performedBy
	}

	return s.CreateAuditLog(log)
}

// LogRecordsImported logs a batch of flat rows entering the dataset
func (s *AuditService) LogRecordsImported(action string, count int, performedBy uuid.UUID, ipAddress, userAgent string) error {
	if !recordActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}

	log := &models.AuditLog{
		Action:    action,
		Resource:  models.AuditResourceAccountRecords,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Metadata: models.JSONBMap{
			"count": count,
		},
	}
	if performedBy != uuid.Nil {
		log.ActorID = &performedBy
	}

	return s.CreateAuditLog(log)
}

// GetTradingAccountActivity returns the audit trail of one trading account, newest first
func (s *AuditService) GetTradingAccountActivity(tradingAccountID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if strings.TrimSpace(tradingAccountID) == "" {
		return nil, 0, ErrInvalidTradingAccount
	}

	return s.repo.GetByResource(models.AuditResourceTradingAccount, tradingAccountID, offset, limit)
}

// PurgeOlderThan deletes audit logs older than retention
func (s *AuditService) PurgeOlderThan(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}

	return s.repo.DeleteOlderThan(retention)
}
