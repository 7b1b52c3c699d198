package config

import (
	"time"

	"github.com/arcframework/arc/internal/plugin/model"
)

// Config represents the global arc configuration.
type Config struct {
	// Archive configures where boilerplate archives are downloaded from.
	Archive ArchiveConfig `mapstructure:"archive"`
	// Installer configures the PHP dependency installer.
	Installer InstallerConfig `mapstructure:"installer"`
}

// ArchiveConfig represents boilerplate download settings.
type ArchiveConfig struct {
	// BaseURL is the archive location; "<channel>.zip" names are appended.
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds the whole download. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// Channel is used when --dev is not given.
	Channel model.Channel `mapstructure:"channel"`
}

// InstallerConfig represents dependency installer settings.
type InstallerConfig struct {
	// Command, when set, replaces installer discovery entirely.
	Command string `mapstructure:"command"`
	// LocalWrapper is the project-local installer probed in the working directory.
	LocalWrapper string `mapstructure:"local_wrapper"`
	// PHPBinary runs the local wrapper.
	PHPBinary string `mapstructure:"php_binary"`
	// GlobalCommand is the fallback looked up on PATH.
	GlobalCommand string `mapstructure:"global_command"`
}
