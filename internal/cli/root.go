package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	templates "github.com/paper-code/templates"
	"github.com/paper-code/templates/internal/config"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	rootPath   string
	configPath string
	jsonOut    bool
	yamlOut    bool
	quiet      bool
	verbose    bool
	noColor    bool
)

// Global configuration (loaded before every command runs)
var globalConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "paper-templates",
	Short: "Locate the bundled PAPER-CODE documentation templates",
	Long: `paper-templates reports where the PAPER-CODE documentation templates are
installed so that generators and scripts can copy or render them.

Templates are grouped in five categories: core, ai, stacks, libs and github.
Each category is a subdirectory of the templates root.

Use "paper-templates path core" to print a category directory.
Use "paper-templates info --json" for the full bundle description.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupOutput(cmd)
		loadConfig()
		configureColor()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootPath, "root", "", "Templates root directory (default $XDG_DATA_HOME/paper-code/templates)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/paper-code/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&yamlOut, "yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	version, commit := buildVersion()
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("paper-templates %s (%s, %s)\n", version, shortCommit(commit), shortDate()))
}

// loadConfig reads the config file. An invalid file is reported and the
// defaults are used instead.
func loadConfig() {
	var (
		cfg *config.Config
		err error
	)
	path := GetConfigPath()
	if configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(path)
	}
	if err != nil {
		ErrorOutput("Warning: failed to load config file %s: %v\n", path, err)
		cfg = config.DefaultConfig()
	}
	globalConfig = cfg
	VerboseOutput("Using templates root %s\n", GetRoot())
}

// shortCommit returns the first 7 characters of the git commit hash
func shortCommit(commit string) string {
	if len(commit) >= 7 {
		return commit[:7]
	}
	return commit
}

// shortDate returns just the date portion of BuildDate (YYYY-MM-DD)
func shortDate() string {
	if len(BuildDate) >= 10 {
		return BuildDate[:10]
	}
	return BuildDate
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// GetConfigPath returns the config file path from the flag or the default.
func GetConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// GetConfig returns the global configuration.
func GetConfig() *config.Config {
	if globalConfig != nil {
		return globalConfig
	}
	return config.DefaultConfig()
}

// GetRoot returns the templates root.
// Priority: flag > env > config file > default
func GetRoot() string {
	if rootPath != "" {
		return rootPath
	}
	return GetConfig().Root
}

// NewRegistry returns the registry for the effective configuration,
// with --root taking precedence over the configured root.
func NewRegistry() *templates.Registry {
	cfg := *GetConfig()
	cfg.Root = GetRoot()
	return cfg.Registry()
}

// IsJSON returns whether JSON output is requested
func IsJSON() bool {
	return jsonOut
}

// IsYAML returns whether YAML output is requested
func IsYAML() bool {
	return yamlOut
}

// IsNoColor returns whether colored output should be disabled.
// Priority: flag > env > config file > default
func IsNoColor() bool {
	if noColor {
		return true
	}
	return GetConfig().NoColor
}

// IsQuiet returns whether quiet mode is enabled
func IsQuiet() bool {
	return quiet
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}

// ExitWithError prints an error and exits with the code matching its kind.
func ExitWithError(err error) {
	fmt.Fprintln(os.Stderr, FormatErrorMessage(err))
	os.Exit(ExitCode(err))
}
