package domain

// PaginationParams carries page/limit values from the HTTP layer down to the
// list helpers. Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100 to prevent runaway responses.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate returns the page of items selected by p. Lists are stored whole,
// so paging happens in memory after the read.
func Paginate[T any](items []T, p PaginationParams) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
