package cli

import (
	"os"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/spf13/cobra"

	"github.com/arcframework/arc/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arc",
	Short: "Arc framework plugin installer",
	Long: `arc creates WordPress plugins built on the Arc framework.

Use "arc new" to:
  1. Answer a few questions about the plugin
  2. Download the Arc boilerplate plugin
  3. Install its Composer dependencies
  4. Personalize the boilerplate with your answers`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetNoColor(globalNoColor)
		debug.SetDebug(globalDebug)
		core.DisableColor = globalNoColor
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printErrorMsg(err.Error())
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&globalNoColor, FlagNoANSI, false, DescNoANSI)
	flags.BoolVar(&globalNoColor, FlagNoColor, false, DescNoANSI)
	_ = flags.MarkHidden(FlagNoColor)
	flags.BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	flags.BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	flags.StringVar(&globalConfig, FlagConfig, "", DescConfig)

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
