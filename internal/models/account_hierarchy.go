package models

import "github.com/shopspring/decimal"

// TradingAccount is a leaf of the account hierarchy
type TradingAccount struct {
	ID      string          `json:"id"`
	Number  string          `json:"number"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	IsLive  bool            `json:"is_live"`
	Status  string          `json:"status"`
}

// CSPAccount groups the trading accounts a user holds with one CSP (broker connection)
type CSPAccount struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	APIName         string           `json:"api_name"`
	Status          string           `json:"status"`
	TradingAccounts []TradingAccount `json:"trading_accounts"`
}

// UserAccount is the root of the account hierarchy
type UserAccount struct {
	UserID      string       `json:"user_id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	CSPAccounts []CSPAccount `json:"csp_accounts"`
}

// AccountsCount holds the totals shown on the dashboard stats cards
type AccountsCount struct {
	TotalUsers   int `json:"total_users"`
	TotalCSP     int `json:"total_csp"`
	TotalTrading int `json:"total_trading"`
}

// TradingAccountCount returns the number of trading accounts across all CSP accounts of the user
func (u *UserAccount) TradingAccountCount() int {
	count := 0
	for i := range u.CSPAccounts {
		count += len(u.CSPAccounts[i].TradingAccounts)
	}
	return count
}

// TotalBalance sums the balances of every trading account of the user
func (u *UserAccount) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for i := range u.CSPAccounts {
		for _, ta := range u.CSPAccounts[i].TradingAccounts {
			total = total.Add(ta.Balance)
		}
	}
	return total
}

// AccountsOverview pairs the totals of the whole dataset with the totals of the filtered view
type AccountsOverview struct {
	Total    AccountsCount `json:"total"`
	Filtered AccountsCount `json:"filtered"`
}

// AccountHierarchyQuery is one request for a page of the hierarchy view.
// FilterKey is the fingerprint of the filters the client's Page was chosen under; when it
// differs from the current filters the page starts over at 1.
type AccountHierarchyQuery struct {
	Filters   FilterParams
	Page      int
	PageSize  int
	FilterKey string
}

// AccountHierarchyPage is one page of the filtered hierarchy together with the counts and
// pagination state the dashboard renders around it
type AccountHierarchyPage struct {
	Users       []UserAccount
	Filters     FilterParams
	FilterKey   string
	Page        int
	PageSize    int
	TotalPages  int
	TotalItems  int
	PageNumbers []int
	PageReset   bool
	Overview    AccountsOverview
}

// IsEmpty reports whether the filtered view has no users at all
func (p *AccountHierarchyPage) IsEmpty() bool {
	return p.TotalItems == 0
}

// ImportResult summarises a batch of flat rows accepted from the account feed
type ImportResult struct {
	Received int `json:"received"`
	Stored   int `json:"stored"`
	// Hidden counts stored rows that lack a user ID or email and so never show in the hierarchy
	Hidden int `json:"hidden"`
}
