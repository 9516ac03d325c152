package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/lacquerai/frac/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build-time variables (set by goreleaser or build scripts)
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	BuiltBy   = "unknown"
	GoVersion = runtime.Version()
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for frac, including build details.`,
	Example: `
  frac version               # Show basic version info
  frac version --output json # Show version info as JSON`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// VersionInfo represents version information
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func currentVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		BuiltBy:   BuiltBy,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func showVersion(w io.Writer) {
	versionInfo := currentVersionInfo()

	switch viper.GetString("output") {
	case "json":
		style.PrintJSON(w, versionInfo)
	case "yaml":
		style.PrintYAML(w, versionInfo)
	default:
		printText(w, versionInfo)
	}
}

func printText(w io.Writer, info VersionInfo) {
	fmt.Fprintf(w, "%s (commit: %s, built: %s, go: %s)\n", info.Version, info.Commit, info.Date, info.GoVersion)
}
