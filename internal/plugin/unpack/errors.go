package unpack

import "fmt"

// UnpackErrorType categorizes unpack errors.
type UnpackErrorType int

const (
	// UnpackExtractFailed indicates the archive is unreadable or an entry could not be written.
	UnpackExtractFailed UnpackErrorType = iota
	// UnpackUnsafePath indicates an archive entry resolves outside the destination.
	UnpackUnsafePath
	// UnpackRenameFailed indicates a rename of an extracted path failed.
	UnpackRenameFailed
)

// UnpackError represents unpack-specific errors.
type UnpackError struct {
	// Type categorizes the error.
	Type UnpackErrorType
	// Message is the error message.
	Message string
	// Path is the file path related to the error (if applicable).
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *UnpackError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *UnpackError) Unwrap() error {
	return e.Cause
}

func newExtractError(message, path string, cause error) *UnpackError {
	return &UnpackError{Type: UnpackExtractFailed, Message: message, Path: path, Cause: cause}
}

func newUnsafePathError(path string) *UnpackError {
	return &UnpackError{Type: UnpackUnsafePath, Message: "archive entry escapes destination directory", Path: path}
}

func newRenameError(from, to string, cause error) *UnpackError {
	return &UnpackError{
		Type:    UnpackRenameFailed,
		Message: fmt.Sprintf("failed to rename to %s", to),
		Path:    from,
		Cause:   cause,
	}
}
