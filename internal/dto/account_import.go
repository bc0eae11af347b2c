package dto

import (
	"strings"

	"tradebot365-admin/internal/models"

	"github.com/shopspring/decimal"
)

// Import Request DTOs

// FlatAccountRecordRequest is one row of the account feed. Only the CSP and trading account
// identifiers are required; rows without a user ID or email are stored but not shown.
type FlatAccountRecordRequest struct {
	UserID               string          `json:"userId" validate:"max=64"`
	UserName             string          `json:"userName" validate:"max=255"`
	UserEmail            string          `json:"userEmail" validate:"omitempty,email,max=255"`
	CSPAccountID         string          `json:"cspAccountId" validate:"required,account_id"`
	CSPAccountName       string          `json:"cspAccountName" validate:"max=255"`
	CSPStatus            string          `json:"cspStatus" validate:"max=20"`
	APIName              string          `json:"apiName" validate:"max=100"`
	TradingAccountID     string          `json:"tradingAccountId" validate:"required,account_id"`
	TradingAccountNumber string          `json:"tradingAccountNumber" validate:"max=64"`
	TradingAccountType   string          `json:"tradingAccountType" validate:"max=50"`
	Balance              decimal.Decimal `json:"balance" validate:"non_negative"`
	IsLive               bool            `json:"isLive"`
	Status               string          `json:"status" validate:"omitempty,connection_status"`
}

// ImportRecordsRequest is a batch of rows from the account feed
type ImportRecordsRequest struct {
	Records []FlatAccountRecordRequest `json:"records" validate:"required,min=1,dive"`
}

// ToModels converts the batch into flat account records
func (r *ImportRecordsRequest) ToModels() []models.FlatAccountRecord {
	records := make([]models.FlatAccountRecord, 0, len(r.Records))
	for _, row := range r.Records {
		status := row.Status
		if cs, ok := models.ParseConnectionStatus(status); ok {
			status = string(cs)
		}
		records = append(records, models.FlatAccountRecord{
			UserID:               strings.TrimSpace(row.UserID),
			UserName:             strings.TrimSpace(row.UserName),
			UserEmail:            strings.TrimSpace(row.UserEmail),
			CSPAccountID:         row.CSPAccountID,
			CSPAccountName:       row.CSPAccountName,
			CSPStatus:            row.CSPStatus,
			APIName:              row.APIName,
			TradingAccountID:     row.TradingAccountID,
			TradingAccountNumber: row.TradingAccountNumber,
			TradingAccountType:   row.TradingAccountType,
			Balance:              row.Balance,
			IsLive:               row.IsLive,
			Status:               status,
		})
	}
	return records
}

// GenerateMockRecordsRequest asks for a generated mock dataset. Zero fields take defaults.
type GenerateMockRecordsRequest struct {
	Users              int      `json:"users" validate:"omitempty,min=1,max=1000"`
	MaxCSPPerUser      int      `json:"maxCspPerUser" validate:"omitempty,min=1,max=10"`
	MaxTradingPerCSP   int      `json:"maxTradingPerCsp" validate:"omitempty,min=1,max=20"`
	IncompleteUserRate *float64 `json:"incompleteUserRate" validate:"omitempty,min=0,max=1"`
	Seed               uint64   `json:"seed"`
}

// ToModel converts the request into generator options
func (r *GenerateMockRecordsRequest) ToModel() models.MockDataOptions {
	opts := models.MockDataOptions{
		Users:              r.Users,
		MaxCSPPerUser:      r.MaxCSPPerUser,
		MaxTradingPerCSP:   r.MaxTradingPerCSP,
		IncompleteUserRate: models.DefaultMockDataOptions().IncompleteUserRate,
		Seed:               r.Seed,
	}
	if r.IncompleteUserRate != nil {
		opts.IncompleteUserRate = *r.IncompleteUserRate
	}
	return opts.WithDefaults()
}

// Import Response DTOs

// ImportRecordsResponse summarises an accepted batch
type ImportRecordsResponse struct {
	Received int `json:"received"`
	Stored   int `json:"stored"`
	Hidden   int `json:"hidden"`
}

// NewImportRecordsResponse maps an import result to its response
func NewImportRecordsResponse(r *models.ImportResult) *ImportRecordsResponse {
	return &ImportRecordsResponse{
		Received: r.Received,
		Stored:   r.Stored,
		Hidden:   r.Hidden,
	}
}
