// Package pagination normalizes page/itemsPerPage query parameters.
package pagination

const (
	// MinItemsPerPage is the smallest page size served.
	MinItemsPerPage = 10
	// MaxItemsPerPage is the largest page size served.
	MaxItemsPerPage = 100
	// DefaultPage is the page served when none is requested.
	DefaultPage = 1
)

// Page is a clamped page request.
type Page struct {
	Number       int
	ItemsPerPage int
}

// New clamps page to at least 1 and itemsPerPage to [MinItemsPerPage, MaxItemsPerPage].
// Out-of-range values are adjusted, never rejected.
func New(page, itemsPerPage int) Page {
	if page < DefaultPage {
		page = DefaultPage
	}
	if itemsPerPage < MinItemsPerPage {
		itemsPerPage = MinItemsPerPage
	}
	if itemsPerPage > MaxItemsPerPage {
		itemsPerPage = MaxItemsPerPage
	}
	return Page{Number: page, ItemsPerPage: itemsPerPage}
}

// Offset returns the number of records to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.ItemsPerPage
}

// Limit returns the maximum number of records to return.
func (p Page) Limit() int {
	return p.ItemsPerPage
}
