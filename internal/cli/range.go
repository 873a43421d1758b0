package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/pagination"
)

// rangeResult is the structured output of the range command.
type rangeResult struct {
	pagination.Range `yaml:",inline"`

	Text string `json:"text" yaml:"text"`
}

func newRangeCmd() *cobra.Command {
	var page, perPage, totalItems int

	cmd := &cobra.Command{
		Use:   "range",
		Short: `Print the "Showing X-Y of Z" range for a page`,
		Long: `Prints the 1-based first and last item shown on a page.

Omit --total-items when the count is not known yet; the range is then empty
and the text reads "No results". With a known count the page is clamped to
the pages that count spans.`,
		Example: `  pagenav range --page 3 --per-page 10 --total-items 25
  pagenav range --page 2 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("per-page") {
				perPage = config.GetGlobalConfig().Pagination.PerPage
			}

			var total *int
			if cmd.Flags().Changed("total-items") {
				total = pagination.Items(totalItems)
				page = pagination.ClampPage(page, pagination.TotalPagesFor(totalItems, perPage))
			}

			r := pagination.ComputeRange(page, perPage, total)
			result := rangeResult{Range: r, Text: pagination.FormatRange(r, total)}
			logger.Debug().Ctx(cmd.Context()).
				Int("start", r.StartItem).
				Int("end", r.EndItem).
				Bool("known_total", total != nil).
				Msg("computed item range")

			if format != OutputTable {
				return writeStructured(cmd.OutOrStdout(), format, result)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "current page (1-based)")
	cmd.Flags().IntVar(&perPage, "per-page", pagination.DefaultPerPage, "items per page (default from config)")
	cmd.Flags().IntVar(&totalItems, "total-items", 0, "total number of items; omit when unknown")

	return cmd
}
