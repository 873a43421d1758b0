package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/pagination"
)

// Grid defaults for the verify command.
const (
	defaultVerifyMaxTotal   = 200
	defaultVerifyMaxVisible = 15
)

// exitCodeViolation is the process exit code when a window breaks an invariant.
const exitCodeViolation = 2

// ExitError carries a process exit code other than 1 out of a command.
type ExitError struct {
	ExitCode int
	Err      error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrCurrentPageHidden is returned when a window does not show the current page.
var ErrCurrentPageHidden = errors.New("current page not shown")

// ErrWindowTooWide is returned when a window shows more numbers than its budget.
var ErrWindowTooWide = errors.New("window exceeds its page budget")

// ErrInvalidGrid is returned for non-positive grid bounds or worker counts.
var ErrInvalidGrid = errors.New("grid bounds must be >= 1")

// verifyResult is the structured output of the verify command.
type verifyResult struct {
	MaxTotalPages   int   `json:"max_total_pages"   yaml:"max_total_pages"`
	MaxVisiblePages int   `json:"max_visible_pages" yaml:"max_visible_pages"`
	Windows         int64 `json:"windows"           yaml:"windows"`
}

func newVerifyCmd() *cobra.Command {
	var maxTotal, maxVisible, workers int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the page-window invariants over a grid of inputs",
		Long: `Computes the window for every current page, total and budget up to the
given bounds and checks that each one is well formed, shows the current page,
and stays within its budget. The first violation fails the command.`,
		Example: `  pagenav verify
  pagenav verify --max-total 1000 --max-visible 25 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if maxTotal < 1 || maxVisible < 1 || workers < 1 {
				return fmt.Errorf("%w: max-total %d, max-visible %d, workers %d",
					ErrInvalidGrid, maxTotal, maxVisible, workers)
			}

			count, err := verifyGrid(cmd.Context(), maxTotal, maxVisible, workers)
			if err != nil {
				return &ExitError{ExitCode: exitCodeViolation, Err: err}
			}
			result := verifyResult{MaxTotalPages: maxTotal, MaxVisiblePages: maxVisible, Windows: count}
			logging.FromContext(cmd.Context()).Info().
				Int64("windows", count).
				Msg("window invariants hold")

			if format != OutputTable {
				return writeStructured(cmd.OutOrStdout(), format, result)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d windows checked (total pages 1-%d, max visible 1-%d)\n",
				count, maxTotal, maxVisible)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTotal, "max-total", defaultVerifyMaxTotal, "largest total page count to check")
	cmd.Flags().IntVar(&maxVisible, "max-visible", defaultVerifyMaxVisible, "largest page budget to check")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "budgets checked concurrently")

	return cmd
}

// verifyGrid checks every window in the grid, one budget per goroutine, and
// returns how many it checked.
func verifyGrid(ctx context.Context, maxTotal, maxVisible, workers int) (int64, error) {
	var checked atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for budget := 1; budget <= maxVisible; budget++ {
		g.Go(func() error {
			for total := 1; total <= maxTotal; total++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				for current := 1; current <= total; current++ {
					if err := verifyWindow(current, total, budget); err != nil {
						return err
					}
					checked.Add(1)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return checked.Load(), err
	}
	return checked.Load(), nil
}

func verifyWindow(current, total, budget int) error {
	tokens := pagination.ComputeVisibleWindow(current, total, budget)
	if err := pagination.CheckWindow(tokens, total, budget); err != nil {
		return fmt.Errorf("page %d of %d, max %d: %w", current, total, budget, err)
	}

	pages := pagination.Pages(tokens)
	if !slices.Contains(pages, current) {
		return fmt.Errorf("%w: page %d of %d, max %d: %v", ErrCurrentPageHidden, current, total, budget, tokens)
	}
	if limit := max(budget, pagination.MinTruncatedWindow); len(pages) > limit {
		return fmt.Errorf("%w: page %d of %d, max %d: %d numbers", ErrWindowTooWide, current, total, budget, len(pages))
	}
	return nil
}
