// Package service implements the application's business logic on top of
// the repository layer.
package service

const (
	// DefaultPageSize applies when a request carries no usable limit.
	DefaultPageSize = 10
	// MaxPageSize caps a single page regardless of the requested limit.
	MaxPageSize = 100
)

// Page is the pagination envelope shared by every paginated listing.
type Page struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// normalizePaging clamps page and pageSize to their documented defaults:
// page 0 when negative, pageSize 10 when non-positive, capped at 100.
func normalizePaging(page, pageSize int) (int, int) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// totalPages is ceil(total/pageSize). Zero items means zero pages, not one.
func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
