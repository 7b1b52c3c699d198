package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/arcframework/arc/internal/plugin/model"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. ARC_ARCHIVE_BASE_URL.
const EnvPrefix = "ARC"

// Loader loads configuration from a YAML file, the environment and defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return &Loader{v: v}
}

// Load loads configuration from the specified file path.
func (l *Loader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newConfigError(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, newConfigError(ConfigInvalid, path, "failed to read configuration file", err)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, newConfigError(ConfigInvalid, path, "invalid YAML syntax", err)
	}

	return l.decode(path)
}

// LoadOrDefault loads configuration, or defaults plus environment overrides
// when the file doesn't exist. An empty path means DefaultConfigPath.
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		cfg, err := l.Load(path)
		if err == nil {
			return cfg, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return l.decode("")
}

func (l *Loader) decode(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := l.v.Unmarshal(cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, newConfigError(ConfigInvalid, path, "failed to parse configuration", err)
	}
	if err := Validate(cfg); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.File = path
		}
		return nil, err
	}
	return cfg, nil
}

// decodeHook composes duration parsing with release channel parsing.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToChannelHookFunc(),
	)
}

func stringToChannelHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(model.Channel("")) {
			return data, nil
		}
		return model.ParseChannel(reflect.ValueOf(data).String())
	}
}

// fileConfig is the on-disk YAML layout.
type fileConfig struct {
	Archive struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
		Channel string `yaml:"channel"`
	} `yaml:"archive"`
	Installer struct {
		Command       string `yaml:"command"`
		LocalWrapper  string `yaml:"local_wrapper"`
		PHPBinary     string `yaml:"php_binary"`
		GlobalCommand string `yaml:"global_command"`
	} `yaml:"installer"`
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg *Config) error {
	var fc fileConfig
	fc.Archive.BaseURL = cfg.Archive.BaseURL
	fc.Archive.Timeout = cfg.Archive.Timeout.String()
	fc.Archive.Channel = cfg.Archive.Channel.String()
	fc.Installer.Command = cfg.Installer.Command
	fc.Installer.LocalWrapper = cfg.Installer.LocalWrapper
	fc.Installer.PHPBinary = cfg.Installer.PHPBinary
	fc.Installer.GlobalCommand = cfg.Installer.GlobalCommand

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&fc); err != nil {
		return err
	}
	return enc.Close()
}

// Save writes cfg to path, creating parent directories.
// An existing file is only replaced when force is set.
func Save(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return newConfigError(ConfigExists, path, "configuration file already exists (use --force to overwrite)", nil)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return newConfigError(ConfigInvalid, path,
			fmt.Sprintf("failed to create directory %s", filepath.Dir(path)), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return newConfigError(ConfigInvalid, path, "failed to create configuration file", err)
	}
	if err := Encode(f, cfg); err != nil {
		f.Close()
		return newConfigError(ConfigInvalid, path, "failed to write configuration file", err)
	}
	if err := f.Close(); err != nil {
		return newConfigError(ConfigInvalid, path, "failed to write configuration file", err)
	}
	return nil
}
