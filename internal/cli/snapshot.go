package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/pagination"
)

func newSnapshotCmd() *cobra.Command {
	params := pagination.NewParams()
	var totalItems int

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print everything a renderer needs for one page",
		Long: `Validates the page parameters and prints the page window, item range and
step-control state for them. Unlike window and range, snapshot rejects a page
past the last one instead of clamping it.`,
		Example: `  pagenav snapshot --page 5 --per-page 10 --total-items 100
  pagenav snapshot --page 2 --total-items 15 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			cfg := config.GetGlobalConfig()
			if !cmd.Flags().Changed("per-page") {
				params.PerPage = cfg.Pagination.PerPage
			}
			if !cmd.Flags().Changed("max-visible") {
				params.MaxVisible = cfg.Pagination.MaxVisiblePages
			}
			if cmd.Flags().Changed("total-items") {
				params.TotalItems = pagination.Items(totalItems)
			}
			if err = params.Validate(); err != nil {
				return err
			}

			s := pagination.SnapshotFromParams(*params)
			logger.Debug().Ctx(cmd.Context()).
				Int("page", s.CurrentPage).
				Int("total_pages", s.TotalPages).
				Msg("computed snapshot")

			if format != OutputTable {
				return writeStructured(cmd.OutOrStdout(), format, s)
			}
			return renderSnapshotTable(cmd, s)
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", pagination.DefaultPage, "current page (1-based)")
	cmd.Flags().IntVar(&params.PerPage, "per-page", pagination.DefaultPerPage, "items per page (default from config)")
	cmd.Flags().IntVar(&params.MaxVisible, "max-visible", pagination.DefaultMaxVisiblePages,
		"most page numbers to show (default from config)")
	cmd.Flags().IntVar(&totalItems, "total-items", 0, "total number of items; omit when unknown")

	return cmd
}

func renderSnapshotTable(cmd *cobra.Command, s pagination.Snapshot) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabwriterPadding, ' ', 0)
	rows := [][2]string{
		{"Page", fmt.Sprintf("%d of %d", s.CurrentPage, s.TotalPages)},
		{"Window", formatTokens(s.Tokens, s.CurrentPage)},
		{"Range", s.RangeText()},
		{"Previous", enabledText(s.HasPrevious)},
		{"Next", enabledText(s.HasNext)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

func enabledText(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
