package filter

const (
	DefaultPerPage = 10
	MaxPerPage     = 50
)

// Page is one window of a paginated list
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// Paginate returns the requested window of items. Page numbers below 1 are
// treated as 1 and perPage is clamped to 1..MaxPerPage, with non-positive
// values falling back to DefaultPerPage. A page past the end is empty.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	start := total
	if page-1 < totalPages {
		start = (page - 1) * perPage
	}
	end := min(start+perPage, total)

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
