package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagenav CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit env lookup for
// testability. Every PAGENAV_* variable is read through lookupEnv.
// Configuration is loaded and logging set up before any subcommand runs.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "pagenav",
		Short:         "Page-window, range and navigation calculator for paginated lists",
		Long:          "pagenav computes the page tokens, item ranges and page changes a page-list control displays, and can browse any list interactively.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, lookupEnv); err != nil {
				return err
			}
			if _, err := outputFormat(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd, lookupEnv)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $PAGENAV_CONFIG or ~/.pagenav/config.yaml)")
	cmd.PersistentFlags().StringP("output", "o", string(OutputTable), "output format: table, json, or yaml")
	cmd.AddCommand(
		newWindowCmd(),
		newRangeCmd(),
		newNavigateCmd(),
		newSnapshotCmd(),
		newBrowseCmd(),
		newVerifyCmd(),
		newConfigCmd(lookupEnv),
	)

	return cmd
}

const rootCmdExample = `  # Page tokens for page 10 of 20 with five page numbers
  pagenav window --page 10 --total-pages 20 --max-visible 5

  # Items shown on page 3 at 10 per page out of 25
  pagenav range --page 3 --per-page 10 --total-items 25

  # Ask whether moving from page 5 to 6 of 10 is a change
  pagenav navigate --to 6 --page 5 --total-pages 10

  # Everything a renderer needs, as JSON
  pagenav snapshot --page 5 --per-page 10 --total-items 100 -o json

  # Page through a file interactively
  pagenav browse access.log

  # Check the window invariants over every small input
  pagenav verify --max-total 300 --max-visible 15`

// loadConfig reads the config file plus the working-directory overlay and
// stores the result globally.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) error {
	path, _ := cmd.Flags().GetString("config")

	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	cfg, err := config.LoadWithOverlay(path, wd, lookupEnv)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}
