package installer

import (
	"errors"
	"fmt"
	"os/exec"
)

// InstallError reports a dependency installation that did not succeed.
type InstallError struct {
	// Command is the shell command that was run.
	Command string
	// Dir is the working directory of the command.
	Dir string
	// ExitCode is the process exit status, or -1 when the process did not run to completion.
	ExitCode int
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("'%s' exited with status %d in %s", e.Command, e.ExitCode, e.Dir)
	}
	return fmt.Sprintf("'%s' failed in %s: %v", e.Command, e.Dir, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *InstallError) Unwrap() error {
	return e.Cause
}

func newInstallError(command, dir string, cause error) *InstallError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(cause, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &InstallError{Command: command, Dir: dir, ExitCode: code, Cause: cause}
}
