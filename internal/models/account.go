package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TradingAccountTypeStandard = "standard"
	TradingAccountTypeECN      = "ecn"
	TradingAccountTypeProp     = "prop"

	CSPStatusActive   = "active"
	CSPStatusInactive = "inactive"
)

var (
	ErrMissingTradingAccountID = errors.New("trading account ID is required")
	ErrMissingCSPAccountID     = errors.New("CSP account ID is required")
	ErrInvalidBalance          = errors.New("balance cannot be negative")
)

// FlatAccountRecord is one row per (user, CSP account, trading account) triple as delivered
// by the account-management feed. Only the identifiers carry meaning; every other field is a
// display value and may be empty.
type FlatAccountRecord struct {
	ID                   uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               string          `gorm:"type:varchar(64);index" json:"user_id"`
	UserName             string          `gorm:"type:varchar(255)" json:"user_name,omitempty"`
	UserEmail            string          `gorm:"type:varchar(255);index" json:"user_email,omitempty"`
	CSPAccountID         string          `gorm:"type:varchar(64);not null;index" json:"csp_account_id"`
	CSPAccountName       string          `gorm:"type:varchar(255)" json:"csp_account_name,omitempty"`
	CSPStatus            string          `gorm:"type:varchar(20)" json:"csp_status,omitempty"`
	APIName              string          `gorm:"type:varchar(100)" json:"api_name,omitempty"`
	TradingAccountID     string          `gorm:"type:varchar(64);not null;index" json:"trading_account_id"`
	TradingAccountNumber string          `gorm:"type:varchar(64)" json:"trading_account_number,omitempty"`
	TradingAccountType   string          `gorm:"type:varchar(50)" json:"trading_account_type,omitempty"`
	Balance              decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"balance"`
	IsLive               bool            `gorm:"not null;default:false" json:"is_live"`
	Status               string          `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt            time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for FlatAccountRecord
func (r *FlatAccountRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = string(ConnectionStatusPending)
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for FlatAccountRecord
func (r *FlatAccountRecord) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return r.Validate()
}

// Validate checks the fields the storage layer depends on. Rows without a user ID or email
// are still valid rows; the hierarchy builder decides whether they are shown.
func (r *FlatAccountRecord) Validate() error {
	if strings.TrimSpace(r.TradingAccountID) == "" {
		return ErrMissingTradingAccountID
	}

	if strings.TrimSpace(r.CSPAccountID) == "" {
		return ErrMissingCSPAccountID
	}

	if r.Status != "" && !IsValidConnectionStatus(r.Status) {
		return ErrInvalidConnectionStatus
	}

	if r.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// TableName returns the table name for FlatAccountRecord
func (r *FlatAccountRecord) TableName() string {
	return "account_records"
}

// TradingAccountEdit holds the editable fields of a trading account. Nil fields are left untouched.
type TradingAccountEdit struct {
	Number  *string          `json:"trading_account_number,omitempty"`
	Type    *string          `json:"trading_account_type,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
	IsLive  *bool            `json:"is_live,omitempty"`
	Status  *string          `json:"status,omitempty"`
}

// IsEmpty returns true if the edit carries no changes
func (e TradingAccountEdit) IsEmpty() bool {
	return e.Number == nil && e.Type == nil && e.Balance == nil && e.IsLive == nil && e.Status == nil
}

// Validate checks the values carried by the edit
func (e TradingAccountEdit) Validate() error {
	if e.Balance != nil && e.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}
	if e.Status != nil && !IsValidConnectionStatus(*e.Status) {
		return ErrInvalidConnectionStatus
	}
	return nil
}

// Fields returns the column updates for the edit. Status values are stored in canonical case.
func (e TradingAccountEdit) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if e.Number != nil {
		fields["trading_account_number"] = *e.Number
	}
	if e.Type != nil {
		fields["trading_account_type"] = *e.Type
	}
	if e.Balance != nil {
		fields["balance"] = *e.Balance
	}
	if e.IsLive != nil {
		fields["is_live"] = *e.IsLive
	}
	if e.Status != nil {
		if cs, ok := ParseConnectionStatus(*e.Status); ok {
			fields["status"] = string(cs)
		} else {
			fields["status"] = *e.Status
		}
	}
	return fields
}
