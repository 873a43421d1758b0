// Package suggest finds the closest known name to a mistyped one.
package suggest

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxDistance is the largest edit distance still offered as a suggestion.
const maxDistance = 2

// Closest returns the candidate nearest to input by edit distance, ignoring
// case. It reports false when input is empty or no candidate is within
// maxDistance edits.
func Closest(input string, candidates []string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}

	best, bestDist := "", maxDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(input, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= maxDistance
}

// Hint returns ` (did you mean "x"?)` for the closest candidate, or "".
func Hint(input string, candidates []string) string {
	if name, ok := Closest(input, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", name)
	}
	return ""
}
