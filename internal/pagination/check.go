package pagination

import (
	"errors"
	"fmt"
)

// ErrWindowInvariant is wrapped by every error CheckWindow returns.
var ErrWindowInvariant = errors.New("page window invariant violated")

// CheckWindow verifies that tokens is a well-formed window for the given state:
// numbers are strictly increasing and within [1, totalPages], ellipses are
// never adjacent, a truncated window starts at 1 and ends at totalPages, and
// an untruncated one is exactly 1..totalPages. It returns nil when all hold.
//
//nolint:gocognit // Each branch is one independent invariant.
func CheckWindow(tokens []Token, totalPages, maxVisiblePages int) error {
	if len(tokens) == 0 {
		return fmt.Errorf("%w: empty window", ErrWindowInvariant)
	}

	last := 0
	for i, t := range tokens {
		if t.IsEllipsis() {
			if i > 0 && tokens[i-1].IsEllipsis() {
				return fmt.Errorf("%w: adjacent ellipses at %d", ErrWindowInvariant, i)
			}
			continue
		}
		if t.Page < 1 || t.Page > totalPages {
			return fmt.Errorf("%w: page %d outside [1, %d]", ErrWindowInvariant, t.Page, totalPages)
		}
		if t.Page <= last {
			return fmt.Errorf("%w: page %d follows %d", ErrWindowInvariant, t.Page, last)
		}
		last = t.Page
	}

	if !IsTruncated(totalPages, maxVisiblePages) {
		if len(tokens) != totalPages || len(Pages(tokens)) != totalPages {
			return fmt.Errorf("%w: want full window 1..%d, got %v", ErrWindowInvariant, totalPages, tokens)
		}
		return nil
	}

	first, final := tokens[0], tokens[len(tokens)-1]
	if first.IsEllipsis() || first.Page != 1 {
		return fmt.Errorf("%w: truncated window starts with %s", ErrWindowInvariant, first)
	}
	if final.IsEllipsis() || final.Page != totalPages {
		return fmt.Errorf("%w: truncated window ends with %s, want %d", ErrWindowInvariant, final, totalPages)
	}
	return nil
}
