package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcframework/arc/internal/app"
	"github.com/arcframework/arc/internal/config"
	"github.com/arcframework/arc/internal/debug"
	"github.com/arcframework/arc/internal/plugin/installer"
	"github.com/arcframework/arc/internal/plugin/model"
	"github.com/arcframework/arc/internal/plugin/personalize"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new Arc framework WordPress plugin",
	Long: `Create a new Arc framework WordPress plugin in the current directory.

The plugin is created in a directory named after its slug. Questions
answered by flags are not asked again.

Examples:
  arc new
  arc new --dev
  arc new --name "My Plugin" --author "Jane Doe"`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

// New command flags
var (
	newDev    bool
	newPreset model.Request
)

func init() {
	flags := newCmd.Flags()
	flags.BoolVar(&newDev, FlagDev, false, DescDev)
	flags.StringVar(&newPreset.Name, FlagName, "", "Plugin name")
	flags.StringVar(&newPreset.Slug, FlagSlug, "", "Plugin slug (directory and entry file name)")
	flags.StringVar(&newPreset.Namespace, FlagNamespace, "", "Plugin PHP namespace")
	flags.StringVar(&newPreset.URI, FlagURI, "", "Plugin URI")
	flags.StringVar(&newPreset.Description, FlagDescription, "", "Plugin description")
	flags.StringVar(&newPreset.Author, FlagAuthor, "", "Plugin author")
	flags.StringVar(&newPreset.AuthorURI, FlagAuthorURI, "", "Plugin author URI")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().LoadOrDefault(globalConfig)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}
	if err := app.CheckCapabilities(workDir); err != nil {
		return err
	}

	req, err := CollectRequest(surveyPrompter{}, newPreset, func(slug string) error {
		return app.VerifyTargetAvailable(workDir, slug)
	})
	if err != nil {
		return err
	}

	channel := cfg.Archive.Channel
	if newDev {
		channel = model.ChannelDev
	}
	if channel == model.ChannelDev {
		printWarning("Installing the latest development release")
	}
	debug.DebugValue("[cli] channel", channel)

	printInfo("Building plugin...")

	result, err := app.New(cmd.Context(), app.NewOptions{
		WorkDir:  workDir,
		Request:  req,
		Channel:  channel,
		Config:   cfg,
		NoANSI:   globalNoColor,
		TTY:      installer.TerminalAvailable(),
		Output:   stdout,
		Reporter: consoleReporter{},
	})
	if err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Plugin created at %s", result.PluginDir))
	printSuccess("Plugin ready! Build something adequate!")
	return nil
}

// consoleReporter prints workflow progress.
type consoleReporter struct{}

func (consoleReporter) InstallFailed(err error) {
	printErrorMsg(fmt.Sprintf("Composer install failed, continuing: %v", err))
}

func (consoleReporter) Substitution(s personalize.Substitution) {
	printProgress(fmt.Sprintf("Replacing %s with %s in %s",
		highlight(s.Placeholder), highlight(s.Replacement), comment(s.Path)))
}
