package pagination

// Snapshot is everything a renderer needs to draw the page-list control for a
// single state. It is recomputed after every state change and never updated
// in place.
type Snapshot struct {
	CurrentPage     int     `json:"current_page"      yaml:"current_page"`
	TotalPages      int     `json:"total_pages"       yaml:"total_pages"`
	MaxVisiblePages int     `json:"max_visible_pages" yaml:"max_visible_pages"`
	ItemsPerPage    int     `json:"items_per_page"    yaml:"items_per_page"`
	TotalItems      *int    `json:"total_items"       yaml:"total_items"`
	Tokens          []Token `json:"tokens"            yaml:"tokens"`
	Range           Range   `json:"range"             yaml:"range"`
	IsFirstPage     bool    `json:"is_first_page"     yaml:"is_first_page"`
	IsLastPage      bool    `json:"is_last_page"      yaml:"is_last_page"`
	HasPrevious     bool    `json:"has_previous"      yaml:"has_previous"`
	HasNext         bool    `json:"has_next"          yaml:"has_next"`
}

// NewSnapshot computes the window and range for state. The page is clamped
// into range first, so the snapshot is always self-consistent.
func NewSnapshot(state State, maxVisiblePages, itemsPerPage int, totalItems *int) Snapshot {
	totalPages := max(state.TotalPages, 1)
	current := ClampPage(state.CurrentPage, totalPages)

	_, hasPrevious := GoToPrevious(current, totalPages)
	_, hasNext := GoToNext(current, totalPages)

	return Snapshot{
		CurrentPage:     current,
		TotalPages:      totalPages,
		MaxVisiblePages: maxVisiblePages,
		ItemsPerPage:    itemsPerPage,
		TotalItems:      totalItems,
		Tokens:          ComputeVisibleWindow(current, totalPages, maxVisiblePages),
		Range:           ComputeRange(current, itemsPerPage, totalItems),
		IsFirstPage:     IsFirstPage(current),
		IsLastPage:      IsLastPage(current, totalPages),
		HasPrevious:     hasPrevious,
		HasNext:         hasNext,
	}
}

// SnapshotFromParams is NewSnapshot for caller-supplied parameters.
func SnapshotFromParams(p Params) Snapshot {
	return NewSnapshot(p.State(), p.MaxVisible, p.PerPage, p.TotalItems)
}

// RangeText is FormatRange for the snapshot's range.
func (s Snapshot) RangeText() string {
	return FormatRange(s.Range, s.TotalItems)
}
