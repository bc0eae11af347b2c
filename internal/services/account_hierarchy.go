package services

import (
	"strings"

	"tradebot365-admin/internal/models"
)

const (
	DefaultPageSize = 10

	// PageEllipsis marks a gap in the page number list
	PageEllipsis = -1

	compactPageThreshold = 5
)

// IsHierarchyEligible reports whether a flat record takes part in the hierarchy.
// Records without a user ID or a user email are excluded.
func IsHierarchyEligible(r *models.FlatAccountRecord) bool {
	return strings.TrimSpace(r.UserID) != "" && strings.TrimSpace(r.UserEmail) != ""
}

// BuildHierarchy groups flat records into User -> CSP Account -> Trading Account trees.
// Users come out in the order their ID is first seen, CSP accounts in the order their ID is
// first seen within the user, and trading accounts in input order without deduplication.
func BuildHierarchy(records []models.FlatAccountRecord) []models.UserAccount {
	users := make([]models.UserAccount, 0)
	userIndex := make(map[string]int)
	cspIndex := make(map[string]map[string]int)

	for i := range records {
		r := &records[i]
		if !IsHierarchyEligible(r) {
			continue
		}

		userID := strings.TrimSpace(r.UserID)
		cspID := strings.TrimSpace(r.CSPAccountID)

		ui, ok := userIndex[userID]
		if !ok {
			users = append(users, newUserAccount(userID, r))
			ui = len(users) - 1
			userIndex[userID] = ui
			cspIndex[userID] = make(map[string]int)
		}
		user := &users[ui]

		ci, ok := cspIndex[userID][cspID]
		if !ok {
			user.CSPAccounts = append(user.CSPAccounts, newCSPAccount(cspID, r))
			ci = len(user.CSPAccounts) - 1
			cspIndex[userID][cspID] = ci
		}
		csp := &user.CSPAccounts[ci]

		csp.TradingAccounts = append(csp.TradingAccounts, newTradingAccount(r))
	}

	return users
}

func newUserAccount(userID string, r *models.FlatAccountRecord) models.UserAccount {
	email := strings.TrimSpace(r.UserEmail)
	name := r.UserName
	if name == "" {
		name = email
	}
	return models.UserAccount{
		UserID:      userID,
		Name:        name,
		Email:       email,
		CSPAccounts: []models.CSPAccount{},
	}
}

func newCSPAccount(cspID string, r *models.FlatAccountRecord) models.CSPAccount {
	name := r.CSPAccountName
	if name == "" {
		name = cspID
	}
	return models.CSPAccount{
		ID:              cspID,
		Name:            name,
		APIName:         r.APIName,
		Status:          r.CSPStatus,
		TradingAccounts: []models.TradingAccount{},
	}
}

func newTradingAccount(r *models.FlatAccountRecord) models.TradingAccount {
	return models.TradingAccount{
		ID:      r.TradingAccountID,
		Number:  r.TradingAccountNumber,
		Type:    r.TradingAccountType,
		Balance: r.Balance,
		IsLive:  r.IsLive,
		Status:  r.Status,
	}
}

// FilterHierarchy returns the users matching every active predicate of params.
// Matching is decided per user; a retained user keeps its whole subtree. With default params
// the input is returned as is. The input tree is never modified.
func FilterHierarchy(tree []models.UserAccount, params models.FilterParams) []models.UserAccount {
	params = params.Normalized()
	if params.IsDefault() {
		return tree
	}

	query := strings.ToLower(params.SearchQuery)

	filtered := make([]models.UserAccount, 0, len(tree))
	for i := range tree {
		user := &tree[i]

		if query != "" && !matchesSearch(user, query) {
			continue
		}
		if params.FilterStatus != models.StatusFilterAll && !matchesStatus(user, params.FilterStatus) {
			continue
		}
		if params.FilterLiveDemo != models.LiveDemoFilterAll && !matchesLiveDemo(user, params.FilterLiveDemo) {
			continue
		}

		filtered = append(filtered, *user)
	}

	return filtered
}

func matchesSearch(user *models.UserAccount, query string) bool {
	if containsFold(user.Name, query) || containsFold(user.Email, query) || containsFold(user.UserID, query) {
		return true
	}

	for i := range user.CSPAccounts {
		csp := &user.CSPAccounts[i]
		if containsFold(csp.Name, query) || containsFold(csp.APIName, query) {
			return true
		}
		for _, ta := range csp.TradingAccounts {
			if containsFold(ta.Number, query) {
				return true
			}
		}
	}

	return false
}

// containsFold expects query to be lower case already
func containsFold(s, query string) bool {
	return strings.Contains(strings.ToLower(s), query)
}

func matchesStatus(user *models.UserAccount, filter models.StatusFilter) bool {
	for i := range user.CSPAccounts {
		csp := &user.CSPAccounts[i]
		if statusMatches(csp.Status, filter) {
			return true
		}
		for _, ta := range csp.TradingAccounts {
			if statusMatches(ta.Status, filter) {
				return true
			}
		}
	}
	return false
}

// statusMatches compares the status string with the filter value, and falls back to the
// status class so that connection states (Connected, Disconnected, Error) answer to the
// active/inactive/error filter values.
func statusMatches(status string, filter models.StatusFilter) bool {
	if strings.EqualFold(status, string(filter)) {
		return true
	}
	class := filter.Class()
	return class != models.StatusClassUnknown && models.ClassifyStatus(status) == class
}

func matchesLiveDemo(user *models.UserAccount, filter models.LiveDemoFilter) bool {
	wantLive := filter == models.LiveDemoFilterLive
	for i := range user.CSPAccounts {
		for _, ta := range user.CSPAccounts[i].TradingAccounts {
			if ta.IsLive == wantLive {
				return true
			}
		}
	}
	return false
}

// CountTotals counts users, CSP accounts and trading accounts in the tree
func CountTotals(tree []models.UserAccount) models.AccountsCount {
	counts := models.AccountsCount{TotalUsers: len(tree)}
	for i := range tree {
		counts.TotalCSP += len(tree[i].CSPAccounts)
		counts.TotalTrading += tree[i].TradingAccountCount()
	}
	return counts
}

// TotalPages returns max(1, ceil(total / pageSize))
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns the 1-indexed page of list. Callers clamp page beforehand;
// a page past the end yields an empty slice. The page is capped at its length so appending
// to it never writes into list.
func Paginate(list []models.UserAccount, page, pageSize int) []models.UserAccount {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(list) {
		return []models.UserAccount{}
	}

	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}

	return list[start:end:end]
}

// PageNumbers builds the page list shown under a table. Up to five pages are listed in full;
// beyond that the first and last page and the window around current are shown, with
// PageEllipsis where pages are skipped.
func PageNumbers(current, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	current = models.ClampPage(current, totalPages)

	if totalPages <= compactPageThreshold {
		pages := make([]int, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	windowStart := max(2, current-1)
	windowEnd := min(totalPages-1, current+1)

	pages := []int{1}
	if windowStart > 2 {
		pages = append(pages, PageEllipsis)
	}
	for p := windowStart; p <= windowEnd; p++ {
		pages = append(pages, p)
	}
	if windowEnd < totalPages-1 {
		pages = append(pages, PageEllipsis)
	}
	pages = append(pages, totalPages)

	return pages
}
