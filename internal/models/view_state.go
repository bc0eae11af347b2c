package models

// ViewState is the caller-owned position in an account hierarchy listing: the fingerprint of
// the filters the page number was chosen under, and the page number itself.
type ViewState struct {
	FilterKey string
	Page      int
}

// ApplyFilters records params as the current filters. Any change to the filters sends the
// view back to page 1; the return value reports whether that happened.
func (v *ViewState) ApplyFilters(params FilterParams) bool {
	key := params.Key()
	if key == v.FilterKey {
		return false
	}
	v.FilterKey = key
	v.Page = 1
	return true
}

// SetPage moves to page, clamped to [1, totalPages]
func (v *ViewState) SetPage(page, totalPages int) {
	v.Page = ClampPage(page, totalPages)
}

// ClampPage clamps a 1-indexed page number to [1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
