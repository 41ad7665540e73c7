package domain

const (
	// DefaultPageLimit applies when a list request names no limit.
	DefaultPageLimit = 20
	// MaxPageLimit caps the limit of any list request.
	MaxPageLimit = 100
)

// PaginationParams selects one page of an ordered listing. Page is 1-indexed.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds PaginationParams from optional query values.
// Missing or non-positive values fall back to page 1 and DefaultPageLimit;
// the limit is capped at MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Bounds returns the [from, to) slice bounds of the page within n items.
// Pages past the end yield an empty range.
func (p PaginationParams) Bounds(n int) (int, int) {
	from := min(p.Offset(), n)
	return from, min(from+p.Limit, n)
}
