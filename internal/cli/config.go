package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcframework/arc/internal/config"
)

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage arc configuration",
	Long: `Manage the arc configuration file.

Settings are read from ~/.config/arc/config.yaml (or --config) and may be
overridden with ARC_* environment variables, e.g. ARC_ARCHIVE_CHANNEL=dev.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, FlagForce, "f", false, DescForce)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := globalConfig
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if err := config.Save(path, config.DefaultConfig(), configInitForce); err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Configuration written to %s", path))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().LoadOrDefault(globalConfig)
	if err != nil {
		return err
	}
	return config.Encode(cmd.OutOrStdout(), cfg)
}
