package pagination

import (
	"errors"
	"fmt"
)

// Defaults and validation limits for caller-supplied parameters.
const (
	DefaultPage            = 1
	DefaultPerPage         = 10
	DefaultMaxVisiblePages = 7
	MinPage                = 1
	MinPerPage             = 1
	MaxPerPage             = 1000
	MinMaxVisiblePages     = 1
	MaxMaxVisiblePages     = 99
)

// Validation errors returned by Params.Validate.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("per-page must be between 1 and 1000")
	ErrInvalidMaxVisible = errors.New("max-visible must be between 1 and 99")
	ErrInvalidTotalItems = errors.New("total-items must be non-negative")
	ErrPageOutOfRange    = errors.New("page is beyond the last page")
)

// Params holds pagination input as supplied by a caller such as CLI flags.
// The core functions clamp bad values; Params exists to reject them at the
// edge with a useful message instead.
type Params struct {
	// Page is the 1-based page to show.
	Page int

	// PerPage is the number of items on each page.
	PerPage int

	// MaxVisible is the page-number budget of the window.
	MaxVisible int

	// TotalItems is the item count, or nil when unknown.
	TotalItems *int
}

// NewParams returns Params with default values and an unknown item count.
func NewParams() *Params {
	return &Params{
		Page:       DefaultPage,
		PerPage:    DefaultPerPage,
		MaxVisible: DefaultMaxVisiblePages,
	}
}

// Validate checks each field's bounds and that Page exists when the item
// count is known.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PerPage < MinPerPage || p.PerPage > MaxPerPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PerPage)
	}
	if p.MaxVisible < MinMaxVisiblePages || p.MaxVisible > MaxMaxVisiblePages {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxVisible, p.MaxVisible)
	}
	if p.TotalItems != nil && *p.TotalItems < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalItems, *p.TotalItems)
	}
	if p.TotalItems != nil && p.Page > p.TotalPages() {
		return fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, p.Page, p.TotalPages())
	}
	return nil
}

// TotalPages returns how many pages TotalItems spans. An unknown or zero
// count still has one (empty) page.
func (p Params) TotalPages() int {
	if p.TotalItems == nil {
		return 1
	}
	return TotalPagesFor(*p.TotalItems, p.PerPage)
}

// Offset returns the index of the first item on Page.
func (p Params) Offset() int {
	return (max(p.Page, 1) - 1) * max(p.PerPage, 1)
}

// State returns the page position described by p.
func (p Params) State() State {
	return State{CurrentPage: p.Page, TotalPages: p.TotalPages()}
}

// TotalPagesFor returns ceil(totalItems / perPage), with a minimum of 1.
func TotalPagesFor(totalItems, perPage int) int {
	perPage = max(perPage, 1)
	if totalItems <= 0 {
		return 1
	}
	pages := totalItems / perPage
	if totalItems%perPage > 0 {
		pages++
	}
	return pages
}

// PageSlice returns the items shown on page. A page beyond the end is capped
// to the last page so the caller always sees the final items.
func PageSlice[T any](items []T, page, perPage int) []T {
	if len(items) == 0 {
		return items
	}
	perPage = max(perPage, 1)
	page = ClampPage(page, TotalPagesFor(len(items), perPage))

	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	return items[start:end]
}
