package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arcframework/arc/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the arc version",
	Long: `Print the arc release together with the commit and toolchain it was built from.

Examples:
  arc version
  arc version --short
  arc version --json`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the release number")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build details as JSON")
}

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func currentVersion() VersionInfo {
	return VersionInfo{
		Version:   build.Version(),
		Commit:    build.Commit(),
		BuildDate: build.Date(),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := currentVersion()
	out := cmd.OutOrStdout()

	switch {
	case versionShort:
		fmt.Fprintln(out, info.Version)
	case versionJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("failed to encode build details: %w", err)
		}
	default:
		fmt.Fprintf(out, "arc %s (%s, built %s)\n", info.Version, info.Commit, info.BuildDate)
		fmt.Fprintf(out, "%s %s\n", info.GoVersion, info.Platform)
	}
	return nil
}
