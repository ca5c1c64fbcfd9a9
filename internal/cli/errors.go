package cli

import (
	"errors"
	"strings"

	templates "github.com/paper-code/templates"
	perrors "github.com/paper-code/templates/internal/errors"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidArgs  = 2
	ExitNotFound     = 3
	ExitManifest     = 4
	ExitConfig       = 5
)

// Common suggestions
const (
	SuggestSetRoot       = "Pass --root or set PAPER_TEMPLATES_ROOT to the directory holding core/, ai/, stacks/, libs/ and github/."
	SuggestListCategory  = "Run 'paper-templates categories' to see available categories."
	SuggestCheckManifest = "Make sure the templates root contains a package.json with a \"version\" field."
	SuggestForceConfig   = "Use --force to overwrite the existing config file."
)

// ExitCode returns the exit code for any error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return perrors.GetCLIExitCode(err)
}

// FormatErrorMessage returns the error message with suggestion if present.
func FormatErrorMessage(err error) string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(err.Error())

	var perr *perrors.Error
	if errors.As(err, &perr) && perr.Suggestion != "" {
		b.WriteString("\n\nSuggestion: ")
		b.WriteString(perr.Suggestion)
	}
	return b.String()
}

// manifestError converts a registry manifest failure into a CLI error.
func manifestError(err error) error {
	if !errors.Is(err, templates.ErrManifestRead) {
		return err
	}
	return perrors.WrapManifest(err, "failed to read templates manifest").
		WithSuggestion(SuggestCheckManifest)
}

// parseCategory parses a category argument into a CLI error on failure.
func parseCategory(arg string) (templates.Category, error) {
	c, err := templates.ParseCategory(arg)
	if err != nil {
		return "", perrors.InvalidArgs("unknown category %q", arg).
			WithDetails("valid", templates.Categories()).
			WithSuggestion(SuggestListCategory)
	}
	return c, nil
}
