package shared

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}

// Limit returns the effective page size, falling back to the default
func (f Filter) Limit() int {
	if f.PageSize > 0 {
		return f.PageSize
	}
	return 20
}

// Offset returns the row offset derived from page and page size
func (f Filter) Offset() int {
	if f.Page > 1 {
		return (f.Page - 1) * f.Limit()
	}
	return 0
}
