package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	templates "github.com/paper-code/templates"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"ls"},
	Short:   "List template categories and their directories",
	Args:    cobra.NoArgs,
	RunE:    runCategories,
}

type categoryEntry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

func runCategories(cmd *cobra.Command, args []string) error {
	reg := NewRegistry()

	var entries []categoryEntry
	for _, c := range templates.Categories() {
		entries = append(entries, categoryEntry{Name: string(c), Path: reg.CategoryPath(c)})
	}

	if ok, err := printStructured(entries); ok {
		return err
	}

	if IsQuiet() {
		for _, e := range entries {
			fmt.Fprintln(stdout, e.Name)
		}
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Path)
	}
	return w.Flush()
}
