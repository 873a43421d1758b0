package pagination

// MinTruncatedWindow is the smallest budget that can show the first page, an
// ellipsis and the last page. Truncated windows never use a smaller budget.
const MinTruncatedWindow = 3

// halfDivisor splits the window budget around the current page.
const halfDivisor = 2

// ComputeVisibleWindow returns the page tokens to display for currentPage out
// of totalPages when at most maxVisiblePages numbers fit.
//
// When every page fits, the result is 1..totalPages. Otherwise the first and
// last pages are always present and ellipses stand in for hidden runs. The
// middle window puts floor((max-3)/2) pages before currentPage and
// ceil((max-3)/2) after it, so an even budget leans one slot towards later
// pages. Callers rely on this exact layout.
//
// Inputs are clamped: totalPages and maxVisiblePages to at least 1 and
// currentPage into [1, totalPages]. Once pages must be hidden the budget is
// raised to MinTruncatedWindow, and a total that fits that budget is shown
// in full.
func ComputeVisibleWindow(currentPage, totalPages, maxVisiblePages int) []Token {
	totalPages = max(totalPages, 1)
	maxVisiblePages = max(maxVisiblePages, 1)
	currentPage = ClampPage(currentPage, totalPages)

	if totalPages <= maxVisiblePages {
		return numberRun(1, totalPages, totalPages)
	}

	budget := max(maxVisiblePages, MinTruncatedWindow)
	if totalPages <= budget {
		return numberRun(1, totalPages, totalPages)
	}
	halfMax := budget / halfDivisor

	switch {
	case currentPage <= halfMax:
		tokens := numberRun(1, budget-1, budget+1)
		return append(tokens, Ellipsis(), Number(totalPages))

	case currentPage+halfMax >= totalPages:
		tokens := make([]Token, 0, budget+1)
		tokens = append(tokens, Number(1), Ellipsis())
		for p := totalPages - (budget - 2); p <= totalPages; p++ {
			tokens = append(tokens, Number(p))
		}
		return tokens

	default:
		inner := budget - MinTruncatedWindow
		before := inner / halfDivisor
		after := (inner + 1) / halfDivisor

		tokens := make([]Token, 0, budget+2)
		tokens = append(tokens, Number(1), Ellipsis())
		for p := currentPage - before; p <= currentPage+after; p++ {
			tokens = append(tokens, Number(p))
		}
		return append(tokens, Ellipsis(), Number(totalPages))
	}
}

// ClampPage forces page into [1, totalPages]. totalPages below 1 is treated as 1.
func ClampPage(page, totalPages int) int {
	totalPages = max(totalPages, 1)
	switch {
	case page < 1:
		return 1
	case page > totalPages:
		return totalPages
	default:
		return page
	}
}

// IsTruncated reports whether the window for totalPages hides any page.
func IsTruncated(totalPages, maxVisiblePages int) bool {
	return max(totalPages, 1) > max(maxVisiblePages, 1)
}

func numberRun(from, to, capacity int) []Token {
	tokens := make([]Token, 0, capacity)
	for p := from; p <= to; p++ {
		tokens = append(tokens, Number(p))
	}
	return tokens
}
