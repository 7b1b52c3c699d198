// Package installer runs the PHP dependency installer inside a new plugin.
package installer

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/arcframework/arc/internal/debug"
)

const (
	// DefaultLocalWrapper is the project-local installer probed in the working directory.
	DefaultLocalWrapper = "composer.phar"
	// DefaultPHPBinary runs the local wrapper.
	DefaultPHPBinary = "php"
	// DefaultGlobalCommand is used when no local wrapper exists.
	DefaultGlobalCommand = "composer"
)

const ttyPath = "/dev/tty"

// Options controls how the installer command is discovered.
type Options struct {
	// Command, when set, is used verbatim and skips discovery.
	Command string
	// LocalWrapper is the wrapper file name looked up in the working directory.
	LocalWrapper string
	// PHPBinary is the interpreter used to run LocalWrapper.
	PHPBinary string
	// GlobalCommand is the fallback resolved through PATH by the shell.
	GlobalCommand string
}

// Find returns the installer command prefix for workDir: the local wrapper run
// through PHPBinary when the wrapper file exists, otherwise GlobalCommand.
func Find(workDir string, opts Options) string {
	if opts.Command != "" {
		return opts.Command
	}

	wrapper := opts.LocalWrapper
	if wrapper == "" {
		wrapper = DefaultLocalWrapper
	}
	path := wrapper
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, wrapper)
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		php := opts.PHPBinary
		if php == "" {
			php = DefaultPHPBinary
		}
		return shellquote.Join(php, path)
	}

	if opts.GlobalCommand != "" {
		return opts.GlobalCommand
	}
	return DefaultGlobalCommand
}

// Installer runs installer subcommands in a plugin directory.
type Installer struct {
	// Command is the installer command prefix (see Find).
	Command string
	// NoANSI forwards --no-ansi to the install command.
	NoANSI bool
	// TTY attaches the install command to the controlling terminal.
	TTY bool
	// Output receives the combined install output when TTY is off.
	Output io.Writer
}

// InstallCommand returns the shell command used to install dependencies.
func (i *Installer) InstallCommand() string {
	line := i.Command + " install --no-scripts --no-suggest"
	if i.NoANSI {
		line += " --no-ansi"
	}
	return line
}

// DumpAutoloadCommand returns the shell command regenerating the autoloader.
func (i *Installer) DumpAutoloadCommand() string {
	return i.Command + " dump-autoload"
}

// Install installs dependencies in dir and blocks until the installer exits.
// A non-zero exit is reported as *InstallError.
func (i *Installer) Install(ctx context.Context, dir string) error {
	line := i.InstallCommand()
	debug.DebugFields("[installer] running", zap.String("command", line), zap.String("dir", dir), zap.Bool("tty", i.TTY))

	cmd := shellCommand(ctx, line)
	cmd.Dir = dir

	if tty := i.openTTY(); tty != nil {
		defer tty.Close()
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		out := i.Output
		if out == nil {
			out = io.Discard
		}
		cmd.Stdout = out
		cmd.Stderr = out
	}

	if err := cmd.Run(); err != nil {
		return newInstallError(line, dir, err)
	}
	return nil
}

// DumpAutoload regenerates the autoloader in dir. The result is not checked.
func (i *Installer) DumpAutoload(ctx context.Context, dir string) {
	line := i.DumpAutoloadCommand()
	cmd := shellCommand(ctx, line)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	debug.DebugFields("[installer] dump-autoload finished",
		zap.String("command", line), zap.ByteString("output", out), zap.Error(err))
}

func (i *Installer) openTTY() *os.File {
	if !i.TTY {
		return nil
	}
	tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		debug.Debug("[installer] terminal unavailable, streaming output: %v", err)
		return nil
	}
	return tty
}

// TerminalAvailable reports whether the installer can be attached to an
// interactive terminal. Never true on Windows.
func TerminalAvailable() bool {
	if runtime.GOOS == "windows" {
		return false
	}
	tty, err := os.Open(ttyPath)
	if err != nil {
		return false
	}
	tty.Close()
	return isatty.IsTerminal(os.Stdout.Fd())
}

func shellCommand(ctx context.Context, line string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", line)
	}
	return exec.CommandContext(ctx, "sh", "-c", line)
}
