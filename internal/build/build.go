// Package build provides build-time information for the arc binary.
// The version is read from the embedded VERSION file unless set via ldflags.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Overridable via ldflags, e.g.
// -X github.com/arcframework/arc/internal/build.version=x.y.z
// -X github.com/arcframework/arc/internal/build.commit=$(git rev-parse --short HEAD)
var (
	version   string
	commit    = "unknown"
	buildDate = "unknown"
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// Commit returns the source revision the binary was built from.
func Commit() string {
	return commit
}

// Date returns the build date.
func Date() string {
	return buildDate
}
