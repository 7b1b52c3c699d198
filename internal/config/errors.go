package config

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file was not found.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the configuration file could not be read, parsed or written.
	ConfigInvalid
	// ConfigValidationFailed indicates a setting has an unusable value.
	ConfigValidationFailed
	// ConfigExists indicates a configuration file would be overwritten.
	ConfigExists
)

// String returns a short description of the error type.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "not found"
	case ConfigInvalid:
		return "invalid"
	case ConfigValidationFailed:
		return "validation failed"
	case ConfigExists:
		return "already exists"
	default:
		return "unknown"
	}
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// File is the configuration file path, empty for defaults and environment.
	File string
	// Field is the configuration key that caused the error.
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.File != "" {
		b.WriteString(" in ")
		b.WriteString(e.File)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " [%s]", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a missing configuration file.
func IsNotFound(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound
}

func newConfigError(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

func newFieldError(field, message string) *ConfigError {
	return &ConfigError{
		Type:    ConfigValidationFailed,
		Field:   field,
		Message: message,
	}
}
