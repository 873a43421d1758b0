package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how a command prints its result.
type OutputFormat string

// Supported output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ErrUnknownOutputFormat is returned for an --output value outside table, json, yaml.
var ErrUnknownOutputFormat = errors.New("unknown output format")

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// ParseOutputFormat resolves an --output value. An empty value means table.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", OutputTable:
		return OutputTable, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML:
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json, or yaml)", ErrUnknownOutputFormat, s)
	}
}

func outputFormat(cmd *cobra.Command) (OutputFormat, error) {
	s, _ := cmd.Flags().GetString("output")
	return ParseOutputFormat(s)
}

// writeStructured encodes v as indented JSON or YAML.
func writeStructured(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // Two-space YAML indentation.
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
	case OutputTable:
		return fmt.Errorf("%w: table is not a structured format", ErrUnknownOutputFormat)
	}
	return nil
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
