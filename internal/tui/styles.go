package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagenav/internal/suggest"
)

// Palette shared by every variant.
const (
	ColorAccent   = lipgloss.Color("39")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("252")
	ColorMuted    = lipgloss.Color("240")
	ColorInfo     = lipgloss.Color("81")
	ColorContrast = lipgloss.Color("16")
)

// Shared text styles.
//
//nolint:gochecknoglobals // Immutable style values reused across renders.
var (
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorInfo)
	RowStyle    = lipgloss.NewStyle().Foreground(ColorValue)
	CursorStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// Variant selects how the page-list control is drawn.
type Variant string

// Known variants.
const (
	VariantDefault Variant = "default"
	VariantCompact Variant = "compact"
	VariantMinimal Variant = "minimal"
)

// ErrUnknownVariant is returned by ParseVariant for names not in VariantStyles.
var ErrUnknownVariant = errors.New("unknown pager variant")

// PagerStyles is the set of styles one variant applies to the control.
type PagerStyles struct {
	Page     lipgloss.Style
	Current  lipgloss.Style
	Ellipsis lipgloss.Style
	Enabled  lipgloss.Style
	Disabled lipgloss.Style
	Range    lipgloss.Style

	// CurrentFormat formats the current page number before styling.
	CurrentFormat string
	// Separator is placed between tokens.
	Separator string
	// Previous and Next label the step controls. Empty hides them.
	Previous string
	Next     string
}

// VariantStyles maps each variant to its styles. Rendering code looks styles
// up here instead of branching on the variant.
//
//nolint:gochecknoglobals // Declarative lookup table.
var VariantStyles = map[Variant]PagerStyles{
	VariantDefault: {
		Page:          lipgloss.NewStyle().Foreground(ColorValue).Padding(0, 1),
		Current:       lipgloss.NewStyle().Foreground(ColorContrast).Background(ColorAccent).Bold(true).Padding(0, 1),
		Ellipsis:      lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1),
		Enabled:       lipgloss.NewStyle().Foreground(ColorAccent),
		Disabled:      lipgloss.NewStyle().Foreground(ColorMuted).Faint(true),
		Range:         lipgloss.NewStyle().Foreground(ColorLabel),
		CurrentFormat: "%d",
		Separator:     " ",
		Previous:      "‹ Prev",
		Next:          "Next ›",
	},
	VariantCompact: {
		Page:          lipgloss.NewStyle().Foreground(ColorValue),
		Current:       lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Underline(true),
		Ellipsis:      lipgloss.NewStyle().Foreground(ColorMuted),
		Enabled:       lipgloss.NewStyle().Foreground(ColorAccent),
		Disabled:      lipgloss.NewStyle().Foreground(ColorMuted).Faint(true),
		Range:         lipgloss.NewStyle().Foreground(ColorLabel).Italic(true),
		CurrentFormat: "%d",
		Separator:     " ",
		Previous:      "‹",
		Next:          "›",
	},
	VariantMinimal: {
		Page:          lipgloss.NewStyle(),
		Current:       lipgloss.NewStyle().Bold(true),
		Ellipsis:      lipgloss.NewStyle(),
		Enabled:       lipgloss.NewStyle(),
		Disabled:      lipgloss.NewStyle(),
		Range:         lipgloss.NewStyle(),
		CurrentFormat: "[%d]",
		Separator:     " ",
	},
}

// ParseVariant resolves a variant name. An empty name means VariantDefault.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return VariantDefault, nil
	}
	v := Variant(name)
	if _, ok := VariantStyles[v]; !ok {
		names := VariantNames()
		return "", fmt.Errorf("%w: %q%s (want one of %s)",
			ErrUnknownVariant, name, suggest.Hint(name, names), strings.Join(names, ", "))
	}
	return v, nil
}

// VariantNames lists the known variants in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(VariantStyles))
	for v := range VariantStyles {
		names = append(names, string(v))
	}
	sort.Strings(names)
	return names
}

// StylesFor returns the styles for v, falling back to VariantDefault.
func StylesFor(v Variant) PagerStyles {
	if s, ok := VariantStyles[v]; ok {
		return s
	}
	return VariantStyles[VariantDefault]
}
