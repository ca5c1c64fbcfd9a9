package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path [category]",
	Short: "Print the templates root or a category directory",
	Long: `Print the templates root, or the directory of one category when given.

The path is computed from the root; it is not checked for existence.
Run 'paper-templates check' to verify the installed layout.

Examples:
  paper-templates path
  paper-templates path core
  cp -r "$(paper-templates path github)" .github`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"core", "ai", "stacks", "libs", "github"},
	RunE:      runPath,
}

type pathResult struct {
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Path     string `json:"path" yaml:"path"`
}

func runPath(cmd *cobra.Command, args []string) error {
	reg := NewRegistry()
	result := pathResult{Path: reg.TemplatesPath()}

	if len(args) == 1 {
		c, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		result.Category = string(c)
		result.Path = reg.CategoryPath(c)
	}

	if ok, err := printStructured(result); ok {
		return err
	}
	// The path is the command's payload, so it is printed even with --quiet.
	fmt.Fprintln(stdout, result.Path)
	return nil
}
