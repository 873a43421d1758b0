package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
)

// ErrConfigExists is returned by config init when the file is already present.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

func newConfigCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pagenav configuration file",
	}
	cmd.AddCommand(NewConfigInitCmd(lookupEnv), newConfigShowCmd(), newConfigValidateCmd(lookupEnv))
	return cmd
}

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at --config,
$PAGENAV_CONFIG, or ~/.pagenav/config.yaml, in that order.`,
		Example: `  # Create global configuration
  pagenav config init

  # Create configuration, overwriting existing
  pagenav config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath(cmd, lookupEnv)

			if !force {
				_, err := os.Stat(path)
				if err == nil {
					return ErrConfigExists
				}
				if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", path, err)
				}
			}

			if err := config.New().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after the file, the .pagenav.yaml overlay in the
working directory, and environment overrides have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == OutputTable {
				format = OutputYAML
			}
			return writeStructured(cmd.OutOrStdout(), format, config.GetGlobalConfig())
		},
	}
}

func newConfigValidateCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the schema_version must satisfy the
supported range and the pagination defaults must be within bounds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.GetGlobalConfig().Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid (%s)\n", configPath(cmd, lookupEnv))
			return nil
		},
	}
}

// configPath returns the --config flag value, falling back to the default path.
func configPath(cmd *cobra.Command, lookupEnv func(string) (string, bool)) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultPathFromEnv(lookupEnv)
}
