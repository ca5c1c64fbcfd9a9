package cli

import (
	"github.com/spf13/cobra"

	templates "github.com/paper-code/templates"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the templates version and category directories",
	Long: `Show the template bundle description: the version from the package
manifest, the templates root and the directory of each category.

Fails when the manifest is missing or malformed.

Examples:
  paper-templates info
  paper-templates info --json`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	reg := NewRegistry()
	info, err := reg.Info()
	if err != nil {
		return manifestError(err)
	}

	if ok, err := printStructured(info); ok {
		return err
	}

	OutputLine("%s", bold.Sprint(info.Description))
	OutputLine("Version: %s", info.Version)
	OutputLine("Path:    %s", info.Path)
	OutputLine("Templates:")
	for _, c := range templates.Categories() {
		OutputLine("  %-7s %s", c, info.Templates.Get(c))
	}
	return nil
}
