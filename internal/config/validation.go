package config

import (
	"net/url"

	"github.com/arcframework/arc/internal/plugin/model"
)

// Validate validates the global configuration.
func Validate(cfg *Config) error {
	u, err := url.Parse(cfg.Archive.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return newFieldError(KeyArchiveBaseURL,
			"base URL must be an absolute http(s) URL")
	}
	if cfg.Archive.Timeout < 0 {
		return newFieldError(KeyArchiveTimeout, "timeout cannot be negative")
	}
	if _, err := model.ParseChannel(string(cfg.Archive.Channel)); err != nil {
		return newFieldError(KeyArchiveChannel, err.Error())
	}
	if cfg.Installer.Command == "" && cfg.Installer.GlobalCommand == "" {
		return newFieldError(KeyInstallerGlobalCommand,
			"global installer command cannot be empty")
	}
	return nil
}
