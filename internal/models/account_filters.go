package models

import (
	"errors"
	"fmt"
	"strings"
)

// StatusFilter restricts the hierarchy to users with a CSP or trading account in the given status
type StatusFilter string

// LiveDemoFilter restricts the hierarchy to users holding live or demo trading accounts
type LiveDemoFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
	StatusFilterError    StatusFilter = "error"

	LiveDemoFilterAll  LiveDemoFilter = "all"
	LiveDemoFilterLive LiveDemoFilter = "live"
	LiveDemoFilterDemo LiveDemoFilter = "demo"
)

var (
	ErrInvalidStatusFilter   = errors.New("invalid status filter")
	ErrInvalidLiveDemoFilter = errors.New("invalid live/demo filter")
)

// FilterParams contains the filter criteria for the account hierarchy
type FilterParams struct {
	SearchQuery    string         `json:"search_query"`
	FilterStatus   StatusFilter   `json:"filter_status"`
	FilterLiveDemo LiveDemoFilter `json:"filter_live_demo"`
}

// DefaultFilterParams returns empty search with both enum filters set to all
func DefaultFilterParams() FilterParams {
	return FilterParams{
		FilterStatus:   StatusFilterAll,
		FilterLiveDemo: LiveDemoFilterAll,
	}
}

// NewFilterParams parses raw query values into FilterParams. Empty enum values default to all.
func NewFilterParams(search, status, liveDemo string) (FilterParams, error) {
	params := DefaultFilterParams()
	params.SearchQuery = search

	if status != "" {
		sf := StatusFilter(strings.ToLower(status))
		if !IsValidStatusFilter(sf) {
			return FilterParams{}, fmt.Errorf("%w: %q", ErrInvalidStatusFilter, status)
		}
		params.FilterStatus = sf
	}

	if liveDemo != "" {
		ld := LiveDemoFilter(strings.ToLower(liveDemo))
		if !IsValidLiveDemoFilter(ld) {
			return FilterParams{}, fmt.Errorf("%w: %q", ErrInvalidLiveDemoFilter, liveDemo)
		}
		params.FilterLiveDemo = ld
	}

	return params, nil
}

// Normalized fills empty enum values with all
func (p FilterParams) Normalized() FilterParams {
	if p.FilterStatus == "" {
		p.FilterStatus = StatusFilterAll
	}
	if p.FilterLiveDemo == "" {
		p.FilterLiveDemo = LiveDemoFilterAll
	}
	return p
}

// IsDefault returns true when no predicate is active
func (p FilterParams) IsDefault() bool {
	n := p.Normalized()
	return n.SearchQuery == "" && n.FilterStatus == StatusFilterAll && n.FilterLiveDemo == LiveDemoFilterAll
}

// Key returns a stable fingerprint of the params, used for memoisation and page reset detection
func (p FilterParams) Key() string {
	n := p.Normalized()
	return fmt.Sprintf("%s|%s|%q", n.FilterStatus, n.FilterLiveDemo, n.SearchQuery)
}

// Class returns the status class a status filter selects
func (f StatusFilter) Class() StatusClass {
	switch f {
	case StatusFilterActive:
		return StatusClassActive
	case StatusFilterInactive:
		return StatusClassInactive
	case StatusFilterError:
		return StatusClassError
	default:
		return StatusClassUnknown
	}
}

// IsValidStatusFilter checks if the status filter is valid
func IsValidStatusFilter(f StatusFilter) bool {
	switch f {
	case StatusFilterAll, StatusFilterActive, StatusFilterInactive, StatusFilterError:
		return true
	default:
		return false
	}
}

// IsValidLiveDemoFilter checks if the live/demo filter is valid
func IsValidLiveDemoFilter(f LiveDemoFilter) bool {
	switch f {
	case LiveDemoFilterAll, LiveDemoFilterLive, LiveDemoFilterDemo:
		return true
	default:
		return false
	}
}
