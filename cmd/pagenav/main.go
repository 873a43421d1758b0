package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/pagenav/internal/cli"
	"github.com/rshade/pagenav/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	err := root.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return extractExitCode(err)
}

// extractExitCode maps err to an exit code: 0 for nil, the carried code for
// a cli.ExitError, and 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}
