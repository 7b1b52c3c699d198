package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcframework/arc/internal/plugin/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://github.com/ArcFramework/plugin/archive", cfg.Archive.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Archive.Timeout)
	assert.Equal(t, model.ChannelStable, cfg.Archive.Channel)
	assert.Empty(t, cfg.Installer.Command)
	assert.Equal(t, "composer.phar", cfg.Installer.LocalWrapper)
	assert.Equal(t, "php", cfg.Installer.PHPBinary)
	assert.Equal(t, "composer", cfg.Installer.GlobalCommand)

	require.NoError(t, Validate(cfg))
}

func TestLoader_Load(t *testing.T) {
	path := writeConfig(t, `
archive:
  base_url: https://mirror.example.com/plugin/archive
  timeout: 45s
  channel: dev
installer:
  php_binary: /usr/bin/php8.2
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.example.com/plugin/archive", cfg.Archive.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Archive.Timeout)
	assert.Equal(t, model.ChannelDev, cfg.Archive.Channel)
	assert.Equal(t, "/usr/bin/php8.2", cfg.Installer.PHPBinary)
	assert.Equal(t, "composer", cfg.Installer.GlobalCommand, "unset keys keep defaults")
}

func TestLoader_LoadNotFound(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ConfigNotFound, cfgErr.Type)
	assert.True(t, IsNotFound(err))
}

func TestLoader_LoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "archive: [unclosed")

	_, err := NewLoader().Load(path)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ConfigInvalid, cfgErr.Type)
	assert.Contains(t, err.Error(), path)
}

func TestLoader_LoadInvalidChannel(t *testing.T) {
	path := writeConfig(t, "archive:\n  channel: nightly\n")

	_, err := NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nightly")
}

func TestLoader_EnvOverride(t *testing.T) {
	t.Setenv("ARC_ARCHIVE_BASE_URL", "http://localhost:8080/archive")
	t.Setenv("ARC_ARCHIVE_TIMEOUT", "10s")
	t.Setenv("ARC_INSTALLER_COMMAND", "/opt/composer")

	path := writeConfig(t, "archive:\n  base_url: https://ignored.example.com\n")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/archive", cfg.Archive.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Archive.Timeout)
	assert.Equal(t, "/opt/composer", cfg.Installer.Command)
}

func TestLoader_LoadOrDefault(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing file with env", func(t *testing.T) {
		t.Setenv("ARC_ARCHIVE_CHANNEL", "dev")

		cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, model.ChannelDev, cfg.Archive.Channel)
	})

	t.Run("default path under home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)

		path := filepath.Join(home, ".config", "arc", "config.yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("installer:\n  global_command: composer2\n"), 0644))

		cfg, err := NewLoader().LoadOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, "composer2", cfg.Installer.GlobalCommand)
	})

	t.Run("invalid file is reported", func(t *testing.T) {
		path := writeConfig(t, "archive: [unclosed")
		_, err := NewLoader().LoadOrDefault(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "relative base url", mutate: func(c *Config) { c.Archive.BaseURL = "/archive" }, field: KeyArchiveBaseURL, wantErr: true},
		{name: "ftp base url", mutate: func(c *Config) { c.Archive.BaseURL = "ftp://example.com" }, field: KeyArchiveBaseURL, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Archive.Timeout = -time.Second }, field: KeyArchiveTimeout, wantErr: true},
		{name: "unknown channel", mutate: func(c *Config) { c.Archive.Channel = "nightly" }, field: KeyArchiveChannel, wantErr: true},
		{name: "no installer", mutate: func(c *Config) { c.Installer.GlobalCommand = "" }, field: KeyInstallerGlobalCommand, wantErr: true},
		{name: "explicit installer only", mutate: func(c *Config) {
			c.Installer.GlobalCommand = ""
			c.Installer.Command = "composer"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, DefaultConfig()))

	out := buf.String()
	assert.Contains(t, out, "base_url: https://github.com/ArcFramework/plugin/archive")
	assert.Contains(t, out, "timeout: 0s")
	assert.Contains(t, out, "channel: stable")
	assert.Contains(t, out, "global_command: composer")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Archive.Timeout = 2 * time.Minute

	require.NoError(t, Save(path, cfg, false))

	loaded, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	err = Save(path, cfg, false)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ConfigExists, cfgErr.Type)

	require.NoError(t, Save(path, DefaultConfig(), true))
}

func TestConfigError_Error(t *testing.T) {
	err := newFieldError("archive.timeout", "timeout cannot be negative")
	assert.Equal(t, "configuration error [archive.timeout]: timeout cannot be negative", err.Error())

	err = newConfigError(ConfigExists, "/tmp/c.yaml", "exists", nil)
	assert.Equal(t, "configuration error in /tmp/c.yaml: exists", err.Error())

	err = newConfigError(ConfigInvalid, "/tmp/c.yaml", "invalid YAML syntax", errors.New("line 2"))
	assert.Equal(t, "configuration error in /tmp/c.yaml: invalid YAML syntax: line 2", err.Error())
	assert.Equal(t, "invalid", err.Type.String())
}
