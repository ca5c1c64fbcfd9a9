package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
)

// setupOutput routes all helpers through the command's streams.
func setupOutput(cmd *cobra.Command) {
	stdout = cmd.OutOrStdout()
	stderr = cmd.ErrOrStderr()
}

// configureColor turns colour off when asked to or when stdout is not a terminal.
func configureColor() {
	color.NoColor = IsNoColor() || !isTerminal(stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Output prints to stdout unless quiet mode is enabled
func Output(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// OutputLine prints a line to stdout unless quiet mode is enabled
func OutputLine(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// VerboseOutput prints to stderr only in verbose mode
func VerboseOutput(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(stderr, format, args...)
	}
}

// ErrorOutput prints to stderr
func ErrorOutput(format string, args ...any) {
	fmt.Fprintf(stderr, format, args...)
}

// printStructured writes v as JSON or YAML when either was requested.
// It reports false when plain text output should be used instead.
func printStructured(v any) (bool, error) {
	switch {
	case IsJSON():
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
		return true, nil
	case IsYAML():
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return true, enc.Close()
	}
	return false, nil
}
