package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TokenKind distinguishes page-number tokens from ellipsis placeholders.
type TokenKind int

const (
	// KindNumber marks a token that refers to a concrete page.
	KindNumber TokenKind = iota
	// KindEllipsis marks a placeholder for a run of hidden pages.
	KindEllipsis
)

// ellipsisText is how an ellipsis is rendered and serialized.
const ellipsisText = "..."

// Token is one entry of a visible page window.
type Token struct {
	Kind TokenKind
	// Page is the 1-based page number. Zero for ellipsis tokens.
	Page int
}

// Number returns a token for page n.
func Number(n int) Token {
	return Token{Kind: KindNumber, Page: n}
}

// Ellipsis returns a placeholder token.
func Ellipsis() Token {
	return Token{Kind: KindEllipsis}
}

// IsEllipsis reports whether t is a placeholder.
func (t Token) IsEllipsis() bool {
	return t.Kind == KindEllipsis
}

// String returns the page number, or "..." for an ellipsis.
func (t Token) String() string {
	if t.IsEllipsis() {
		return ellipsisText
	}
	return strconv.Itoa(t.Page)
}

// MarshalJSON encodes numbers as JSON numbers and ellipses as "...".
func (t Token) MarshalJSON() ([]byte, error) {
	if t.IsEllipsis() {
		return json.Marshal(ellipsisText)
	}
	return json.Marshal(t.Page)
}

// UnmarshalJSON accepts the encoding produced by MarshalJSON.
func (t *Token) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Number(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding page token: %w", err)
	}
	if s != ellipsisText {
		return fmt.Errorf("decoding page token: unexpected string %q", s)
	}
	*t = Ellipsis()
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (t Token) MarshalYAML() (interface{}, error) {
	if t.IsEllipsis() {
		return ellipsisText, nil
	}
	return t.Page, nil
}

// UnmarshalYAML accepts the encoding produced by MarshalYAML.
func (t *Token) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == ellipsisText {
		*t = Ellipsis()
		return nil
	}
	n, err := strconv.Atoi(node.Value)
	if err != nil {
		return fmt.Errorf("decoding page token %q: %w", node.Value, err)
	}
	*t = Number(n)
	return nil
}

// Pages returns the page numbers in tokens, skipping ellipses.
func Pages(tokens []Token) []int {
	pages := make([]int, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsEllipsis() {
			pages = append(pages, t.Page)
		}
	}
	return pages
}
