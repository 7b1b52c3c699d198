package personalize

import "fmt"

// PersonalizeErrorType categorizes personalization errors.
type PersonalizeErrorType int

const (
	// PersonalizeTargetMissing indicates a substitution target does not exist.
	PersonalizeTargetMissing PersonalizeErrorType = iota
	// PersonalizeRenameFailed indicates the entry file could not be renamed.
	PersonalizeRenameFailed
	// PersonalizeIOFailed indicates a target could not be read or written.
	PersonalizeIOFailed
)

// PersonalizeError represents a personalization failure.
type PersonalizeError struct {
	// Type categorizes the error.
	Type PersonalizeErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error.
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *PersonalizeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
	}
	return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
}

// Unwrap returns the underlying cause.
func (e *PersonalizeError) Unwrap() error {
	return e.Cause
}

func newTargetMissingError(file string, cause error) *PersonalizeError {
	return &PersonalizeError{Type: PersonalizeTargetMissing, Message: "file not found", File: file, Cause: cause}
}

func newRenameError(file string, cause error) *PersonalizeError {
	return &PersonalizeError{Type: PersonalizeRenameFailed, Message: "failed to rename entry file", File: file, Cause: cause}
}

func newIOError(message, file string, cause error) *PersonalizeError {
	return &PersonalizeError{Type: PersonalizeIOFailed, Message: message, File: file, Cause: cause}
}
