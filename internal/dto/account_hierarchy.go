package dto

import (
	"strings"

	"tradebot365-admin/internal/models"

	"github.com/shopspring/decimal"
)

// Hierarchy Request DTOs

// HierarchyQuery holds the query string of the hierarchy listing and the stats endpoint
type HierarchyQuery struct {
	Search    string `query:"search" validate:"max=200"`
	Status    string `query:"status" validate:"status_filter"`
	LiveDemo  string `query:"liveDemo" validate:"live_demo_filter"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"pageSize" validate:"omitempty,min=1"`
	FilterKey string `query:"filterKey" validate:"max=300"`
}

// FilterParams converts the query into filter params
func (q *HierarchyQuery) FilterParams() (models.FilterParams, error) {
	return models.NewFilterParams(strings.TrimSpace(q.Search), q.Status, q.LiveDemo)
}

// ToModel converts the query into a hierarchy page request
func (q *HierarchyQuery) ToModel() (models.AccountHierarchyQuery, error) {
	params, err := q.FilterParams()
	if err != nil {
		return models.AccountHierarchyQuery{}, err
	}
	return models.AccountHierarchyQuery{
		Filters:   params,
		Page:      q.Page,
		PageSize:  q.PageSize,
		FilterKey: q.FilterKey,
	}, nil
}

// Hierarchy Response DTOs

// Badge is the presentation of a status class
type Badge struct {
	Variant string `json:"variant"`
	Label   string `json:"label"`
}

var badgeVariants = map[models.StatusClass]string{
	models.StatusClassActive:   "success",
	models.StatusClassInactive: "secondary",
	models.StatusClassError:    "destructive",
	models.StatusClassPending:  "warning",
	models.StatusClassUnknown:  "outline",
}

// BadgeForStatus renders a status string. The label keeps the status as stored; an empty
// status is labelled Unknown.
func BadgeForStatus(status string) Badge {
	label := strings.TrimSpace(status)
	if label == "" {
		label = "Unknown"
	}
	return Badge{
		Variant: badgeVariants[models.ClassifyStatus(status)],
		Label:   label,
	}
}

// TradingAccountView is a trading account row of the hierarchy table
type TradingAccountView struct {
	ID      string          `json:"id"`
	Number  string          `json:"number"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	IsLive  bool            `json:"isLive"`
	Mode    string          `json:"mode"`
	Status  string          `json:"status"`
	Badge   Badge           `json:"badge"`
}

// CSPAccountView is a CSP account panel of a user accordion
type CSPAccountView struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	APIName         string               `json:"apiName"`
	Status          string               `json:"status"`
	Badge           Badge                `json:"badge"`
	TradingAccounts []TradingAccountView `json:"tradingAccounts"`
}

// UserAccountView is a user accordion of the hierarchy view
type UserAccountView struct {
	UserID              string           `json:"userId"`
	Name                string           `json:"name"`
	Email               string           `json:"email"`
	CSPAccountCount     int              `json:"cspAccountCount"`
	TradingAccountCount int              `json:"tradingAccountCount"`
	TotalBalance        decimal.Decimal  `json:"totalBalance"`
	CSPAccounts         []CSPAccountView `json:"cspAccounts"`
}

// AccountsCountResponse holds the stats card totals
type AccountsCountResponse struct {
	TotalUsers   int `json:"totalUsers"`
	TotalCSP     int `json:"totalCsp"`
	TotalTrading int `json:"totalTrading"`
}

// AccountsStatsResponse holds the totals of the whole dataset and of the filtered view
type AccountsStatsResponse struct {
	Total    AccountsCountResponse `json:"total"`
	Filtered AccountsCountResponse `json:"filtered"`
}

// FiltersResponse echoes the filters a page was computed with
type FiltersResponse struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	LiveDemo string `json:"liveDemo"`
}

// PageMeta is the pagination state of a hierarchy page. PageNumbers uses 0 for an ellipsis.
type PageMeta struct {
	Page        int    `json:"page"`
	PageSize    int    `json:"pageSize"`
	TotalPages  int    `json:"totalPages"`
	TotalItems  int    `json:"totalItems"`
	PageNumbers []int  `json:"pageNumbers"`
	HasPrevious bool   `json:"hasPrevious"`
	HasNext     bool   `json:"hasNext"`
	FilterKey   string `json:"filterKey"`
	PageReset   bool   `json:"pageReset"`
}

// HierarchyPageResponse is one page of the account hierarchy view
type HierarchyPageResponse struct {
	Users   []UserAccountView     `json:"users"`
	Empty   bool                  `json:"empty"`
	Filters FiltersResponse       `json:"filters"`
	Stats   AccountsStatsResponse `json:"stats"`
}

// NewTradingAccountView maps a trading account to its row
func NewTradingAccountView(ta models.TradingAccount) TradingAccountView {
	mode := "demo"
	if ta.IsLive {
		mode = "live"
	}
	return TradingAccountView{
		ID:      ta.ID,
		Number:  ta.Number,
		Type:    ta.Type,
		Balance: ta.Balance,
		IsLive:  ta.IsLive,
		Mode:    mode,
		Status:  ta.Status,
		Badge:   BadgeForStatus(ta.Status),
	}
}

// NewUserAccountView maps a user subtree to its accordion
func NewUserAccountView(u *models.UserAccount) UserAccountView {
	csps := make([]CSPAccountView, 0, len(u.CSPAccounts))
	for _, csp := range u.CSPAccounts {
		trading := make([]TradingAccountView, 0, len(csp.TradingAccounts))
		for _, ta := range csp.TradingAccounts {
			trading = append(trading, NewTradingAccountView(ta))
		}
		csps = append(csps, CSPAccountView{
			ID:              csp.ID,
			Name:            csp.Name,
			APIName:         csp.APIName,
			Status:          csp.Status,
			Badge:           BadgeForStatus(csp.Status),
			TradingAccounts: trading,
		})
	}

	return UserAccountView{
		UserID:              u.UserID,
		Name:                u.Name,
		Email:               u.Email,
		CSPAccountCount:     len(u.CSPAccounts),
		TradingAccountCount: u.TradingAccountCount(),
		TotalBalance:        u.TotalBalance(),
		CSPAccounts:         csps,
	}
}

// NewAccountsCountResponse maps totals to the stats card shape
func NewAccountsCountResponse(c models.AccountsCount) AccountsCountResponse {
	return AccountsCountResponse{
		TotalUsers:   c.TotalUsers,
		TotalCSP:     c.TotalCSP,
		TotalTrading: c.TotalTrading,
	}
}

// NewAccountsStatsResponse maps the overview to the stats response
func NewAccountsStatsResponse(o *models.AccountsOverview) AccountsStatsResponse {
	return AccountsStatsResponse{
		Total:    NewAccountsCountResponse(o.Total),
		Filtered: NewAccountsCountResponse(o.Filtered),
	}
}

// NewHierarchyPageResponse maps a hierarchy page to the response body and its pagination meta
func NewHierarchyPageResponse(p *models.AccountHierarchyPage) (*HierarchyPageResponse, *PageMeta) {
	users := make([]UserAccountView, 0, len(p.Users))
	for i := range p.Users {
		users = append(users, NewUserAccountView(&p.Users[i]))
	}

	pageNumbers := make([]int, 0, len(p.PageNumbers))
	for _, n := range p.PageNumbers {
		if n < 1 {
			n = 0
		}
		pageNumbers = append(pageNumbers, n)
	}

	response := &HierarchyPageResponse{
		Users: users,
		Empty: p.IsEmpty(),
		Filters: FiltersResponse{
			Search:   p.Filters.SearchQuery,
			Status:   string(p.Filters.FilterStatus),
			LiveDemo: string(p.Filters.FilterLiveDemo),
		},
		Stats: NewAccountsStatsResponse(&p.Overview),
	}

	meta := &PageMeta{
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		PageNumbers: pageNumbers,
		HasPrevious: p.Page > 1,
		HasNext:     p.Page < p.TotalPages,
		FilterKey:   p.FilterKey,
		PageReset:   p.PageReset,
	}

	return response, meta
}
