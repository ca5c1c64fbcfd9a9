package cli

import (
	"strings"

	"github.com/spf13/cobra"

	templates "github.com/paper-code/templates"
	perrors "github.com/paper-code/templates/internal/errors"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"doctor"},
	Short:   "Verify the installed template layout",
	Long: `Verify that every category directory exists under the templates root
and that the package manifest can be read.

Exit codes:
  0  layout complete
  3  one or more category directories are missing
  4  the manifest is missing or malformed`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	layout := templates.Inspect(NewRegistry())

	if ok, err := printStructured(layout); ok {
		if err != nil {
			return err
		}
	} else {
		printLayout(layout)
	}

	if missing := layout.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, c := range missing {
			names[i] = string(c)
		}
		return perrors.NotFound("missing template directories: %s", strings.Join(names, ", ")).
			WithDetails("root", layout.Root).
			WithSuggestion(SuggestSetRoot)
	}
	if layout.ManifestError != "" {
		return perrors.Manifest("%s", layout.ManifestError).
			WithSuggestion(SuggestCheckManifest)
	}
	for _, c := range layout.Categories {
		if c.Error != "" {
			return perrors.General("cannot scan %s: %s", c.Path, c.Error)
		}
	}
	return nil
}

func printLayout(l templates.Layout) {
	OutputLine("Templates root: %s", l.Root)
	if l.ManifestError != "" {
		OutputLine("%s manifest %s", red.Sprint("[FAIL]"), l.Manifest)
	} else {
		OutputLine("%s manifest %s (version %s)", green.Sprint("[OK]"), l.Manifest, l.Version)
	}
	for _, c := range l.Categories {
		switch {
		case !c.Exists:
			OutputLine("%s %-7s %s", red.Sprint("[MISSING]"), c.Category, c.Path)
		case c.Error != "":
			OutputLine("%s %-7s %s: %s", yellow.Sprint("[WARN]"), c.Category, c.Path, c.Error)
		default:
			OutputLine("%s %-7s %s (%d files)", green.Sprint("[OK]"), c.Category, c.Path, c.Files)
		}
	}
}
