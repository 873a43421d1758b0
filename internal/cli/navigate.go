package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/suggest"
)

// Navigation steps accepted by --step.
const (
	stepNext     = "next"
	stepPrevious = "previous"
	stepFirst    = "first"
	stepLast     = "last"
)

// ErrNavigateTarget is returned when --to and --step are both set or both missing.
var ErrNavigateTarget = errors.New("exactly one of --to or --step is required")

// ErrUnknownStep is returned for a --step outside next, previous, first, last.
var ErrUnknownStep = errors.New("unknown step")

// navigateResult is the structured output of the navigate command. NewPage
// is zero when the request is a no-op.
type navigateResult struct {
	State    pagination.State `json:"state"     yaml:"state"`
	Request  string           `json:"request"   yaml:"request"`
	Accepted bool             `json:"accepted"  yaml:"accepted"`
	NewPage  int              `json:"new_page"  yaml:"new_page"`
}

func newNavigateCmd() *cobra.Command {
	var (
		page, totalPages, to int
		step                 string
	)

	cmd := &cobra.Command{
		Use:   "navigate",
		Short: "Decide whether a page request changes the current page",
		Long: `Evaluates a page request against the current state.

A request for the page already shown, or for a page outside [1, total-pages],
is a no-op and prints "no-op". An accepted request prints the new page. Both
outcomes exit successfully.`,
		Example: `  pagenav navigate --page 5 --total-pages 10 --to 6
  pagenav navigate --page 10 --total-pages 10 --step next`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			hasTo, hasStep := cmd.Flags().Changed("to"), cmd.Flags().Changed("step")
			if hasTo == hasStep {
				return ErrNavigateTarget
			}

			state := pagination.State{CurrentPage: page, TotalPages: totalPages}
			result := navigateResult{State: state}

			ctrl := pagination.NewController(func(newPage int) {
				result.Accepted = true
				result.NewPage = newPage
			})
			if hasTo {
				result.Request = fmt.Sprintf("page %d", to)
				ctrl.Request(to, state)
			} else {
				result.Request = strings.ToLower(step)
				if err = applyStep(ctrl, result.Request, state); err != nil {
					return err
				}
			}

			logger.Debug().Ctx(cmd.Context()).
				Str("request", result.Request).
				Bool("accepted", result.Accepted).
				Int("new_page", result.NewPage).
				Msg("evaluated page request")

			if format != OutputTable {
				return writeStructured(cmd.OutOrStdout(), format, result)
			}
			if !result.Accepted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no-op")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "page %d\n", result.NewPage)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "current page (1-based)")
	cmd.Flags().IntVar(&totalPages, "total-pages", 1, "number of pages")
	cmd.Flags().IntVar(&to, "to", 0, "requested page")
	cmd.Flags().StringVar(&step, "step", "", "relative request: next, previous, first, or last")

	return cmd
}

func applyStep(ctrl pagination.Controller, step string, state pagination.State) error {
	switch step {
	case stepNext:
		ctrl.Next(state)
	case stepPrevious, "prev":
		ctrl.Previous(state)
	case stepFirst:
		ctrl.First(state)
	case stepLast:
		ctrl.Last(state)
	default:
		hint := suggest.Hint(step, []string{stepNext, stepPrevious, stepFirst, stepLast})
		return fmt.Errorf("%w: %q%s (want next, previous, first, or last)", ErrUnknownStep, step, hint)
	}
	return nil
}
