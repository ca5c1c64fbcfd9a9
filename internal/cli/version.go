package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of paper-templates, build date, Go version, and the installed templates version.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

type versionInfo struct {
	Version          string `json:"version" yaml:"version"`
	GitCommit        string `json:"git_commit" yaml:"git_commit"`
	BuildDate        string `json:"build_date" yaml:"build_date"`
	GoVersion        string `json:"go_version" yaml:"go_version"`
	Platform         string `json:"platform" yaml:"platform"`
	TemplatesRoot    string `json:"templates_root" yaml:"templates_root"`
	TemplatesVersion string `json:"templates_version,omitempty" yaml:"templates_version,omitempty"`
}

// buildVersion returns the ldflags version, falling back to module build info
// for `go install` builds.
func buildVersion() (version, commit string) {
	version, commit = Version, GitCommit
	if version != "dev" {
		return version, commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				commit = s.Value
			}
		}
	}
	return version, commit
}

func runVersion(cmd *cobra.Command, args []string) error {
	version, commit := buildVersion()
	reg := NewRegistry()
	info := versionInfo{
		Version:       version,
		GitCommit:     commit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		Platform:      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		TemplatesRoot: reg.TemplatesPath(),
	}

	// A broken manifest is reported by info/check; version only shows what it can.
	if ti, err := reg.Info(); err == nil {
		info.TemplatesVersion = ti.Version
	}

	if ok, err := printStructured(info); ok {
		return err
	}

	fmt.Fprintf(stdout, "paper-templates %s (%s, %s)\n", info.Version, shortCommit(commit), shortDate())
	OutputLine("Go: %s", info.GoVersion)
	OutputLine("Platform: %s", info.Platform)
	if info.TemplatesVersion != "" {
		OutputLine("Templates: %s (v%s)", info.TemplatesRoot, info.TemplatesVersion)
	} else {
		OutputLine("Templates: %s (manifest not readable)", info.TemplatesRoot)
	}
	return nil
}
