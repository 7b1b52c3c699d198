package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arcframework/arc/internal/config"
	"github.com/arcframework/arc/internal/debug"
	"github.com/arcframework/arc/internal/plugin/fetch"
	"github.com/arcframework/arc/internal/plugin/installer"
	"github.com/arcframework/arc/internal/plugin/model"
	"github.com/arcframework/arc/internal/plugin/personalize"
	"github.com/arcframework/arc/internal/plugin/unpack"
)

// Reporter receives progress from the New workflow.
type Reporter interface {
	// InstallFailed is called when dependency installation fails. The workflow continues.
	InstallFailed(err error)
	// Substitution is called before each placeholder substitution.
	Substitution(s personalize.Substitution)
}

type nopReporter struct{}

func (nopReporter) InstallFailed(error)                   {}
func (nopReporter) Substitution(personalize.Substitution) {}

// NewOptions contains options for creating a plugin.
type NewOptions struct {
	// WorkDir is the directory the plugin is created in. Defaults to the current directory.
	WorkDir string
	// Request holds the collected answers.
	Request model.Request
	// Channel selects the boilerplate archive. Defaults to the configured channel.
	Channel model.Channel
	// Config is the global configuration. Defaults to config.DefaultConfig().
	Config *config.Config
	// NoANSI forwards --no-ansi to the dependency installer.
	NoANSI bool
	// TTY attaches the dependency installer to the terminal.
	TTY bool
	// Output receives installer output when TTY is off.
	Output io.Writer
	// Reporter receives workflow progress (optional).
	Reporter Reporter
	// HTTPClient overrides the download client (optional).
	HTTPClient *http.Client
}

// NewResult contains the results of plugin creation.
type NewResult struct {
	// PluginDir is the absolute path of the generated plugin.
	PluginDir string
	// EntryFile is the path of the renamed plugin entry file.
	EntryFile string
	// ArchiveName is the remote archive that was installed.
	ArchiveName string
	// InstallErr holds the non-fatal dependency installation failure, if any.
	InstallErr error
	// Substitutions is the number of substitutions applied.
	Substitutions int
}

// New downloads the boilerplate plugin and personalizes it for opts.Request.
//
// Stages run strictly in order: fetch, unpack, dependency install,
// personalization, autoload refresh. Every failure except dependency
// installation aborts the workflow and leaves already written files in place.
func New(ctx context.Context, opts NewOptions) (*NewResult, error) {
	debug.DebugSection("[app] New plugin workflow start")

	workDir, err := resolveWorkDir(opts.WorkDir)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	req := opts.Request
	channel := opts.Channel
	if channel == "" {
		channel = cfg.Archive.Channel
	}

	debug.DebugFields("[app] request",
		zap.String("workDir", workDir),
		zap.String("name", req.Name),
		zap.String("slug", req.Slug),
		zap.String("namespace", req.Namespace),
		zap.Stringer("channel", channel))

	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if err := CheckCapabilities(workDir); err != nil {
		return nil, err
	}
	if err := VerifyTargetAvailable(workDir, req.Slug); err != nil {
		return nil, err
	}

	// Fetch
	fetcher := fetch.NewFetcher(cfg.Archive.BaseURL, cfg.Archive.Timeout)
	if opts.HTTPClient != nil {
		fetcher.HTTPClient = opts.HTTPClient
	}
	archive, err := fetcher.Fetch(ctx, channel, workDir)
	if err != nil {
		return nil, NewAppError(DownloadFailed, "failed to download boilerplate", err)
	}

	// Unpack
	pluginDir := resolvePath(workDir, req.Slug)
	if err := unpack.Extract(archive.Path, workDir); err != nil {
		unpack.CleanUp(archive.Path)
		return nil, NewAppError(ExtractionFailed, "failed to extract boilerplate", err)
	}
	if err := unpack.Rename(filepath.Join(workDir, archive.Directory()), pluginDir); err != nil {
		unpack.CleanUp(archive.Path)
		return nil, NewAppError(RenameFailed, "failed to move boilerplate into place", err)
	}
	unpack.CleanUp(archive.Path)

	result := &NewResult{
		PluginDir:   pluginDir,
		ArchiveName: archive.Name,
	}

	// Dependencies
	inst := &installer.Installer{
		Command: installer.Find(workDir, installer.Options{
			Command:       cfg.Installer.Command,
			LocalWrapper:  cfg.Installer.LocalWrapper,
			PHPBinary:     cfg.Installer.PHPBinary,
			GlobalCommand: cfg.Installer.GlobalCommand,
		}),
		NoANSI: opts.NoANSI,
		TTY:    opts.TTY,
		Output: opts.Output,
	}
	if err := inst.Install(ctx, pluginDir); err != nil {
		result.InstallErr = NewAppError(DependencyInstallFailed, "dependency installation failed", err)
		reporter.InstallFailed(result.InstallErr)
	}

	// Personalization
	entry, err := personalize.RenameEntry(pluginDir, req)
	if err != nil {
		return result, NewAppError(RenameFailed, "failed to rename plugin entry file", err)
	}
	result.EntryFile = entry

	subs := personalize.Plan(personalize.DefaultRules, personalize.Values{
		Request:   req,
		PluginDir: realPath(pluginDir),
	})
	applied := 0
	err = personalize.Apply(workDir, subs, func(s personalize.Substitution) {
		applied++
		reporter.Substitution(s)
	})
	if err != nil {
		result.Substitutions = applied - 1
		return result, personalizeError(err)
	}
	result.Substitutions = applied

	inst.DumpAutoload(ctx, pluginDir)

	debug.DebugFields("[app] New plugin workflow complete",
		zap.String("pluginDir", pluginDir),
		zap.Int("substitutions", result.Substitutions),
		zap.Bool("installFailed", result.InstallErr != nil))

	return result, nil
}

func personalizeError(err error) error {
	var pErr *personalize.PersonalizeError
	if errors.As(err, &pErr) && pErr.Type == personalize.PersonalizeTargetMissing {
		return NewAppError(FileNotFound, fmt.Sprintf("cannot personalize %s", pErr.File), err)
	}
	return NewAppError(SubstitutionFailed, "failed to personalize plugin", err)
}

// ValidateRequest checks that the answers needed to build a plugin are present.
func ValidateRequest(req model.Request) error {
	if req.Name == "" {
		return NewAppError(InvalidRequest, "plugin name is required", nil)
	}
	if req.Slug == "" {
		return NewAppError(InvalidRequest, "plugin slug is required", nil)
	}
	return nil
}

// CheckCapabilities verifies the working directory can receive the download
// and the extracted plugin.
func CheckCapabilities(workDir string) error {
	info, err := os.Stat(workDir)
	if err != nil {
		return NewAppError(MissingCapability, "working directory is not accessible", err)
	}
	if !info.IsDir() {
		return NewAppError(MissingCapability, fmt.Sprintf("%s is not a directory", workDir), nil)
	}

	probe, err := os.CreateTemp(workDir, ".arc-probe-*")
	if err != nil {
		return NewAppError(MissingCapability, "working directory is not writable", err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// VerifyTargetAvailable fails with TargetExists when a file or directory
// already exists at the slug path, unless that path is workDir itself.
func VerifyTargetAvailable(workDir, slug string) error {
	target := resolvePath(workDir, slug)
	if _, err := os.Lstat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return NewAppError(MissingCapability, fmt.Sprintf("cannot inspect %s", target), err)
	}
	if filepath.Clean(target) == filepath.Clean(workDir) {
		return nil
	}
	return NewAppError(TargetExists, fmt.Sprintf("plugin already exists at %s", target), nil)
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", NewAppError(MissingCapability, "failed to determine working directory", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", NewAppError(MissingCapability, "failed to resolve working directory", err)
	}
	return abs, nil
}

func resolvePath(workDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(workDir, p)
}

// realPath resolves symlinks, falling back to path when it cannot.
func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
