// Package debug provides the process wide debug logger enabled by --debug.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	output  io.Writer = os.Stderr
	logger            = zap.NewNop()
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored level names
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output. Defaults to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// Logger returns the current logger. It is a no-op logger while debug mode is off.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// rebuild replaces the logger after a setting changed. Callers hold mu.
func rebuild() {
	if !enabled {
		logger = zap.NewNop()
		return
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.EncodeCaller = nil
	encCfg.CallerKey = ""
	if noColor {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(output), zapcore.DebugLevel)
	logger = zap.New(core)
}

// Debug prints a formatted debug message
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	Logger().Debug(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	Logger().Debug("=== " + section + " ===")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	Logger().Debug(fmt.Sprintf("%s = %v", key, value))
}

// DebugFields prints a message with structured fields.
func DebugFields(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}
