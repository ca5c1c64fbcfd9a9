package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/paper-code/templates/internal/config"
	perrors "github.com/paper-code/templates/internal/errors"
)

var configForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
	Long:  `Inspect or create the paper-templates configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample config file",
	Long: `Write a commented sample config file to the config path.

Examples:
  paper-templates config init
  paper-templates config init --config ./paper-templates.toml --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

type configView struct {
	File     string `json:"file" yaml:"file"`
	Root     string `json:"root" yaml:"root"`
	Manifest string `json:"manifest" yaml:"manifest"`
	NoColor  bool   `json:"no_color" yaml:"no_color"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	view := configView{
		File:     GetConfigPath(),
		Root:     GetRoot(),
		Manifest: cfg.Manifest,
		NoColor:  IsNoColor(),
	}

	if ok, err := printStructured(view); ok {
		return err
	}

	OutputLine("Config file: %s", view.File)
	OutputLine("Root:        %s", view.Root)
	OutputLine("Manifest:    %s", view.Manifest)
	OutputLine("No color:    %t", view.NoColor)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := GetConfigPath()

	if _, err := os.Stat(path); err == nil && !configForce {
		return perrors.WrapConfig(os.ErrExist, "config file %s already exists", path).
			WithSuggestion(SuggestForceConfig)
	}

	if err := config.WriteConfigFile(path); err != nil {
		return perrors.WrapConfig(err, "failed to write config file %s", path)
	}

	OutputLine("%s Wrote %s", green.Sprint("[OK]"), path)
	return nil
}
