package dto

import (
	"strings"
	"time"

	"tradebot365-admin/internal/models"

	"github.com/shopspring/decimal"
)

// Action Request DTOs

// EditTradingAccountRequest carries the fields of a trading account edit. Omitted fields keep
// their value.
type EditTradingAccountRequest struct {
	Number  *string          `json:"number" validate:"omitempty,min=1,max=64"`
	Type    *string          `json:"type" validate:"omitempty,min=1,max=50"`
	Balance *decimal.Decimal `json:"balance" validate:"omitempty,non_negative"`
	IsLive  *bool            `json:"isLive"`
	Status  *string          `json:"status" validate:"omitempty,connection_status"`
}

// ToModel converts the request into a trading account edit
func (r *EditTradingAccountRequest) ToModel() models.TradingAccountEdit {
	edit := models.TradingAccountEdit{
		Balance: r.Balance,
		IsLive:  r.IsLive,
		Status:  r.Status,
	}
	if r.Number != nil {
		number := strings.TrimSpace(*r.Number)
		edit.Number = &number
	}
	if r.Type != nil {
		accountType := strings.TrimSpace(*r.Type)
		edit.Type = &accountType
	}
	return edit
}

// Action Response DTOs

// ActivityEntry is one audit trail entry of a trading account
type ActivityEntry struct {
	ID          string          `json:"id"`
	Action      string          `json:"action"`
	PerformedBy string          `json:"performedBy,omitempty"`
	IPAddress   string          `json:"ipAddress,omitempty"`
	Metadata    models.JSONBMap `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ActivityResponse is a page of a trading account audit trail
type ActivityResponse struct {
	TradingAccountID string          `json:"tradingAccountId"`
	Entries          []ActivityEntry `json:"entries"`
	Total            int64           `json:"total"`
	Offset           int             `json:"offset"`
	Limit            int             `json:"limit"`
}

// NewActivityResponse maps audit log entries to the activity response
func NewActivityResponse(tradingAccountID string, logs []*models.AuditLog, total int64, offset, limit int) *ActivityResponse {
	entries := make([]ActivityEntry, 0, len(logs))
	for _, log := range logs {
		entry := ActivityEntry{
			ID:        log.ID.String(),
			Action:    log.Action,
			IPAddress: log.IPAddress,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		}
		if log.ActorID != nil {
			entry.PerformedBy = log.ActorID.String()
		}
		entries = append(entries, entry)
	}

	return &ActivityResponse{
		TradingAccountID: tradingAccountID,
		Entries:          entries,
		Total:            total,
		Offset:           offset,
		Limit:            limit,
	}
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
