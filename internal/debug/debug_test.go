package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// capture enables debug output into a buffer and restores defaults afterwards.
func capture(t *testing.T, enable bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	SetDebug(enable)
	t.Cleanup(func() {
		SetDebug(false)
		SetNoColor(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	buf := capture(t, true)

	Debug("test message %s", "arg")

	output := buf.String()
	if !strings.Contains(output, "DEBUG") {
		t.Errorf("Output should contain DEBUG level, got: %s", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	if !strings.Contains(output, ":") {
		t.Errorf("Output should contain timestamp, got: %s", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	buf := capture(t, false)

	Debug("this should not appear")
	DebugFields("nor this", zap.String("k", "v"))

	if buf.String() != "" {
		t.Errorf("Debug output should be empty when disabled, got: %s", buf.String())
	}
}

func TestDebugSection(t *testing.T) {
	buf := capture(t, true)

	DebugSection("Test Section")

	if !strings.Contains(buf.String(), "=== Test Section ===") {
		t.Errorf("Output should contain section header, got: %s", buf.String())
	}
}

func TestDebugValue(t *testing.T) {
	buf := capture(t, true)

	DebugValue("key", "value")

	if !strings.Contains(buf.String(), "key = value") {
		t.Errorf("Output should contain key=value, got: %s", buf.String())
	}
}

func TestDebugFields(t *testing.T) {
	buf := capture(t, true)

	DebugFields("archive saved", zap.String("path", "/tmp/a.zip"), zap.Int("bytes", 42))

	output := buf.String()
	if !strings.Contains(output, "archive saved") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	if !strings.Contains(output, `"path": "/tmp/a.zip"`) {
		t.Errorf("Output should contain path field, got: %s", output)
	}
	if !strings.Contains(output, `"bytes": 42`) {
		t.Errorf("Output should contain bytes field, got: %s", output)
	}
}
