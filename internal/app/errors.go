package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// MissingCapability indicates the environment cannot run the workflow at all.
	MissingCapability AppErrorType = iota
	// InvalidRequest indicates required answers are missing.
	InvalidRequest
	// TargetExists indicates the plugin directory is already taken.
	TargetExists
	// DownloadFailed indicates the boilerplate archive could not be downloaded.
	DownloadFailed
	// ExtractionFailed indicates the archive could not be extracted.
	ExtractionFailed
	// RenameFailed indicates an extracted path could not be renamed.
	RenameFailed
	// DependencyInstallFailed indicates the dependency installer exited non-zero.
	DependencyInstallFailed
	// FileNotFound indicates a personalization target is missing.
	FileNotFound
	// SubstitutionFailed indicates a personalization target could not be rewritten.
	SubstitutionFailed
)

// String returns the error kind name.
func (t AppErrorType) String() string {
	switch t {
	case MissingCapability:
		return "MissingCapabilityError"
	case InvalidRequest:
		return "InvalidRequestError"
	case TargetExists:
		return "TargetExistsError"
	case DownloadFailed:
		return "DownloadError"
	case ExtractionFailed:
		return "ExtractionError"
	case RenameFailed:
		return "RenameError"
	case DependencyInstallFailed:
		return "DependencyInstallError"
	case FileNotFound:
		return "FileNotFoundError"
	case SubstitutionFailed:
		return "SubstitutionError"
	default:
		return "UnknownError"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsFatal reports whether err must abort the workflow.
// Only dependency installation failures are tolerated.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type == DependencyInstallFailed {
		return false
	}
	return true
}

// ErrorType returns the AppErrorType carried by err, if any.
func ErrorType(err error) (AppErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return 0, false
}
