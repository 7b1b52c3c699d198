package fetch

import "fmt"

// FetchErrorType represents the type of fetch error.
type FetchErrorType int

const (
	// FetchFailed indicates the request could not be completed.
	FetchFailed FetchErrorType = iota
	// FetchNotFound indicates the archive does not exist at the remote location.
	FetchNotFound
	// FetchBadStatus indicates the server answered with a non-success status.
	FetchBadStatus
	// FetchWriteFailed indicates the archive could not be written locally.
	FetchWriteFailed
)

// String returns the string representation of the error type.
func (t FetchErrorType) String() string {
	switch t {
	case FetchFailed:
		return "FetchFailed"
	case FetchNotFound:
		return "NotFound"
	case FetchBadStatus:
		return "BadStatus"
	case FetchWriteFailed:
		return "WriteFailed"
	default:
		return "Unknown"
	}
}

// FetchError represents an archive download failure.
type FetchError struct {
	// Type is the error type classification.
	Type FetchErrorType
	// Message is the human-readable error message.
	Message string
	// URL is the archive URL that was requested.
	URL string
	// StatusCode is the HTTP status, when a response was received.
	StatusCode int
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	msg := fmt.Sprintf("download of '%s' failed [%s]: %s", e.URL, e.Type, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewFetchError creates a request failure error.
func NewFetchError(url string, cause error) *FetchError {
	return &FetchError{Type: FetchFailed, Message: "request failed", URL: url, Cause: cause}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(url string, status int) *FetchError {
	return &FetchError{Type: FetchNotFound, Message: "archive not found", URL: url, StatusCode: status}
}

// NewStatusError creates an unexpected status error.
func NewStatusError(url string, status int) *FetchError {
	return &FetchError{Type: FetchBadStatus, Message: "unexpected response status", URL: url, StatusCode: status}
}

// NewWriteError creates a local write failure error.
func NewWriteError(url string, cause error) *FetchError {
	return &FetchError{Type: FetchWriteFailed, Message: "failed to save archive", URL: url, Cause: cause}
}
