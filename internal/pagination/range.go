package pagination

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Range is the inclusive span of items shown on a page. {0, 0} means there is
// nothing to report.
type Range struct {
	StartItem int `json:"start_item" yaml:"start_item"`
	EndItem   int `json:"end_item"   yaml:"end_item"`
}

// IsEmpty reports whether r is the "nothing to report" range.
func (r Range) IsEmpty() bool {
	return r.StartItem == 0 && r.EndItem == 0
}

// ComputeRange returns the items covered by currentPage. totalItems may be nil
// when the count is unknown; unknown and zero counts both give {0, 0}.
// currentPage and itemsPerPage below 1 are treated as 1.
func ComputeRange(currentPage, itemsPerPage int, totalItems *int) Range {
	if totalItems == nil || *totalItems <= 0 {
		return Range{}
	}
	currentPage = max(currentPage, 1)
	itemsPerPage = max(itemsPerPage, 1)

	return Range{
		StartItem: (currentPage-1)*itemsPerPage + 1,
		EndItem:   min(currentPage*itemsPerPage, *totalItems),
	}
}

// Items is a convenience for building the optional totalItems argument.
func Items(n int) *int {
	return &n
}

// rangePrinter groups digits the same way regardless of the host locale.
//
//nolint:gochecknoglobals // message.Printer is safe for concurrent use and costly to rebuild.
var rangePrinter = message.NewPrinter(language.English)

// FormatRange renders r for a results line, e.g. "Showing 1,001-1,010 of 25,000".
// A range whose page lies past the last item renders as "No results".
func FormatRange(r Range, totalItems *int) string {
	if r.IsEmpty() || totalItems == nil || r.StartItem > r.EndItem {
		return "No results"
	}
	return rangePrinter.Sprintf("Showing %d-%d of %d", r.StartItem, r.EndItem, *totalItems)
}
