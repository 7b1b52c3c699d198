package installer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell based installer tests require sh")
	}
}

func TestFind(t *testing.T) {
	t.Run("global fallback", func(t *testing.T) {
		assert.Equal(t, "composer", Find(t.TempDir(), Options{}))
	})

	t.Run("custom global command", func(t *testing.T) {
		assert.Equal(t, "composer2", Find(t.TempDir(), Options{GlobalCommand: "composer2"}))
	})

	t.Run("explicit command wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "composer.phar"), []byte("phar"), 0644))
		assert.Equal(t, "/opt/bin/composer", Find(dir, Options{Command: "/opt/bin/composer"}))
	})

	t.Run("local wrapper", func(t *testing.T) {
		dir := t.TempDir()
		wrapper := filepath.Join(dir, "composer.phar")
		require.NoError(t, os.WriteFile(wrapper, []byte("phar"), 0644))
		assert.Equal(t, "php "+wrapper, Find(dir, Options{}))
	})

	t.Run("local wrapper with custom php and spaces", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "with space")
		require.NoError(t, os.Mkdir(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "composer.phar"), []byte("phar"), 0644))

		got := Find(dir, Options{PHPBinary: "php8.2"})
		assert.Equal(t, "php8.2 '"+filepath.Join(dir, "composer.phar")+"'", got)
	})

	t.Run("wrapper directory ignored", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "composer.phar"), 0755))
		assert.Equal(t, "composer", Find(dir, Options{}))
	})
}

func TestInstaller_Commands(t *testing.T) {
	i := &Installer{Command: "composer"}
	assert.Equal(t, "composer install --no-scripts --no-suggest", i.InstallCommand())
	assert.Equal(t, "composer dump-autoload", i.DumpAutoloadCommand())

	i.NoANSI = true
	assert.Equal(t, "composer install --no-scripts --no-suggest --no-ansi", i.InstallCommand())
}

func TestInstaller_InstallStreamsOutput(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	var out bytes.Buffer
	i := &Installer{Command: "echo", Output: &out}

	require.NoError(t, i.Install(context.Background(), dir))
	assert.Equal(t, "install --no-scripts --no-suggest\n", out.String())
}

func TestInstaller_InstallRunsInDir(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	i := &Installer{Command: "touch installed; true"}

	require.NoError(t, i.Install(context.Background(), dir))
	assert.FileExists(t, filepath.Join(dir, "installed"))
}

func TestInstaller_InstallFailure(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	var out bytes.Buffer
	i := &Installer{Command: "false", Output: &out}

	err := i.Install(context.Background(), dir)
	require.Error(t, err)

	var installErr *InstallError
	require.True(t, errors.As(err, &installErr))
	assert.Equal(t, 1, installErr.ExitCode)
	assert.Equal(t, dir, installErr.Dir)
	assert.Contains(t, err.Error(), "exited with status 1")
}

func TestInstaller_InstallMissingDir(t *testing.T) {
	skipOnWindows(t)

	i := &Installer{Command: "true"}
	err := i.Install(context.Background(), filepath.Join(t.TempDir(), "missing"))

	var installErr *InstallError
	require.True(t, errors.As(err, &installErr))
	assert.Equal(t, -1, installErr.ExitCode)
}

func TestInstaller_DumpAutoloadIgnoresFailure(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	i := &Installer{Command: "touch dumped; false"}

	assert.NotPanics(t, func() { i.DumpAutoload(context.Background(), dir) })
	assert.FileExists(t, filepath.Join(dir, "dumped"))
}
