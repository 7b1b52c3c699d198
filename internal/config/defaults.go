package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/arcframework/arc/internal/plugin/fetch"
	"github.com/arcframework/arc/internal/plugin/installer"
	"github.com/arcframework/arc/internal/plugin/model"
)

// Configuration keys.
const (
	KeyArchiveBaseURL         = "archive.base_url"
	KeyArchiveTimeout         = "archive.timeout"
	KeyArchiveChannel         = "archive.channel"
	KeyInstallerCommand       = "installer.command"
	KeyInstallerLocalWrapper  = "installer.local_wrapper"
	KeyInstallerPHPBinary     = "installer.php_binary"
	KeyInstallerGlobalCommand = "installer.global_command"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Archive: ArchiveConfig{
			BaseURL: fetch.DefaultBaseURL,
			Timeout: 0,
			Channel: model.ChannelStable,
		},
		Installer: InstallerConfig{
			Command:       "",
			LocalWrapper:  installer.DefaultLocalWrapper,
			PHPBinary:     installer.DefaultPHPBinary,
			GlobalCommand: installer.DefaultGlobalCommand,
		},
	}
}

// setDefaults registers every key so environment overrides are picked up
// by Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyArchiveBaseURL, d.Archive.BaseURL)
	v.SetDefault(KeyArchiveTimeout, d.Archive.Timeout.String())
	v.SetDefault(KeyArchiveChannel, d.Archive.Channel.String())
	v.SetDefault(KeyInstallerCommand, d.Installer.Command)
	v.SetDefault(KeyInstallerLocalWrapper, d.Installer.LocalWrapper)
	v.SetDefault(KeyInstallerPHPBinary, d.Installer.PHPBinary)
	v.SetDefault(KeyInstallerGlobalCommand, d.Installer.GlobalCommand)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "arc", "config.yaml")
}
