package build

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, strings.TrimSpace(embeddedVersion), Version())

	prev := version
	version = "9.9.9"
	t.Cleanup(func() { version = prev })
	assert.Equal(t, "9.9.9", Version())
}
