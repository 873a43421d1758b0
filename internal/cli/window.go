package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/pagination"
)

// windowResult is the structured output of the window command.
type windowResult struct {
	CurrentPage     int                `json:"current_page"      yaml:"current_page"`
	TotalPages      int                `json:"total_pages"       yaml:"total_pages"`
	MaxVisiblePages int                `json:"max_visible_pages" yaml:"max_visible_pages"`
	Truncated       bool               `json:"truncated"         yaml:"truncated"`
	Tokens          []pagination.Token `json:"tokens"            yaml:"tokens"`
}

func newWindowCmd() *cobra.Command {
	var page, totalPages, maxVisible int

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the page tokens a page-list control shows",
		Long: `Prints the ordered page numbers and ellipses for the current page.

The first and last pages are always shown once pages are hidden. Out-of-range
input is clamped: the page into [1, total-pages] and both counts to at least 1.`,
		Example: `  pagenav window --page 1 --total-pages 20 --max-visible 5
  pagenav window --page 10 --total-pages 20 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-visible") {
				maxVisible = config.GetGlobalConfig().Pagination.MaxVisiblePages
			}

			result := computeWindow(page, totalPages, maxVisible)
			logger.Debug().Ctx(cmd.Context()).
				Int("page", result.CurrentPage).
				Int("total_pages", result.TotalPages).
				Int("max_visible", result.MaxVisiblePages).
				Int("tokens", len(result.Tokens)).
				Msg("computed page window")

			if format != OutputTable {
				return writeStructured(cmd.OutOrStdout(), format, result)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatTokens(result.Tokens, result.CurrentPage))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "current page (1-based)")
	cmd.Flags().IntVar(&totalPages, "total-pages", 1, "number of pages")
	cmd.Flags().IntVar(&maxVisible, "max-visible", pagination.DefaultMaxVisiblePages,
		"most page numbers to show (default from config)")

	return cmd
}

func computeWindow(page, totalPages, maxVisible int) windowResult {
	totalPages = max(totalPages, 1)
	maxVisible = max(maxVisible, 1)
	current := pagination.ClampPage(page, totalPages)
	return windowResult{
		CurrentPage:     current,
		TotalPages:      totalPages,
		MaxVisiblePages: maxVisible,
		Truncated:       pagination.IsTruncated(totalPages, maxVisible),
		Tokens:          pagination.ComputeVisibleWindow(current, totalPages, maxVisible),
	}
}

// formatTokens writes tokens on one line with the current page in brackets.
func formatTokens(tokens []pagination.Token, current int) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsEllipsis() && tok.Page == current {
			parts = append(parts, fmt.Sprintf("[%d]", tok.Page))
			continue
		}
		parts = append(parts, tok.String())
	}
	return strings.Join(parts, " ")
}
