package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/tui"
)

// maxLineBytes bounds a single input line read by browse.
const maxLineBytes = 1024 * 1024

// browseOptions holds the flags of the browse command.
type browseOptions struct {
	page       int
	perPage    int
	maxVisible int
	variant    string
	title      string
	plain      bool
}

func newBrowseCmd() *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Page through the lines of a file or stdin",
		Long: `Shows one page of lines at a time with a page-list control underneath.

On a terminal this opens an interactive pager. Otherwise, or with --plain, it
prints the requested page, its page window and its range once.`,
		Example: `  pagenav browse access.log
  kubectl get pods -A | pagenav browse --per-page 20
  pagenav browse --plain --page 3 words.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", pagination.DefaultPage, "page to open")
	cmd.Flags().IntVar(&opts.perPage, "per-page", pagination.DefaultPerPage, "lines per page (default from config)")
	cmd.Flags().IntVar(&opts.maxVisible, "max-visible", pagination.DefaultMaxVisiblePages,
		"most page numbers to show (default from config)")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "pager style: default, compact, or minimal (default from config)")
	cmd.Flags().StringVar(&opts.title, "title", "", "title shown above the list (default the file name)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print one page instead of opening the interactive pager")

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string, opts browseOptions) error {
	cfg := config.GetGlobalConfig()
	if !cmd.Flags().Changed("per-page") {
		opts.perPage = cfg.Pagination.PerPage
	}
	if !cmd.Flags().Changed("max-visible") {
		opts.maxVisible = cfg.Pagination.MaxVisiblePages
	}
	if opts.variant == "" {
		opts.variant = cfg.Pagination.Variant
	}
	variant, err := tui.ParseVariant(opts.variant)
	if err != nil {
		return err
	}

	params := pagination.Params{Page: opts.page, PerPage: opts.perPage, MaxVisible: opts.maxVisible}
	if err = params.Validate(); err != nil {
		return err
	}

	items, source, err := readItems(cmd, args)
	if err != nil {
		return err
	}
	if opts.title == "" {
		opts.title = source
	}
	logging.FromContext(cmd.Context()).Debug().
		Str("source", source).
		Int("items", len(items)).
		Msg("loaded items")

	fromStdin := len(args) == 0
	if opts.plain || !isTerminal(os.Stdout) {
		return renderBrowsePlain(cmd.OutOrStdout(), items, params, variant)
	}

	model := tui.NewPagerModel(items, tui.PagerOptions{
		Title:           opts.title,
		PerPage:         opts.perPage,
		MaxVisiblePages: opts.maxVisible,
		Variant:         variant,
		StartPage:       opts.page,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if fromStdin {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	if _, err = tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("failed to run interactive pager: %w", err)
	}
	return nil
}

// readItems reads the lines of args[0], or of stdin when no file is given.
func readItems(cmd *cobra.Command, args []string) ([]string, string, error) {
	if len(args) == 0 {
		items, err := readLines(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return items, "stdin", nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	items, err := readLines(f)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return items, filepath.Base(args[0]), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// renderBrowsePlain prints one page of items followed by the pager and range.
// A page past the end shows the last page.
func renderBrowsePlain(w io.Writer, items []string, params pagination.Params, variant tui.Variant) error {
	params.TotalItems = pagination.Items(len(items))
	s := pagination.SnapshotFromParams(params)

	params.Page = s.CurrentPage
	offset := params.Offset()
	for i, item := range pagination.PageSlice(items, s.CurrentPage, s.ItemsPerPage) {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", offset+i+1, item); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}
	}
	if len(items) == 0 {
		if _, err := fmt.Fprintln(w, "Nothing to show"); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", tui.RenderPager(s, variant), s.RangeText()); err != nil {
		return fmt.Errorf("writing pager: %w", err)
	}
	return nil
}
