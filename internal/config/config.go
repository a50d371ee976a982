// Package config loads faculty settings from config.yaml with Viper and
// writes the default file on first run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

const (
	fileName = "config"
	fileType = "yaml"
	fileExt  = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. FACULTY_LOG_LEVEL.
	EnvPrefix = "FACULTY"
)

// Config keys.
const (
	KeyBackend      = "backend"
	KeyDataDir      = "data_dir"
	KeySyncStrategy = "sync_strategy"
	KeyLogLevel     = "log_level"
	KeyLocale       = "locale"
)

// Defaults.
const (
	DefaultBackend  = types.BackendSQLite
	DefaultLogLevel = "warn"
	DefaultLocale   = "en"
)

// Settings is the decoded content of config.yaml after defaults and
// environment overrides are applied.
type Settings struct {
	Backend      string `yaml:"backend" mapstructure:"backend"`
	DataDir      string `yaml:"data_dir,omitempty" mapstructure:"data_dir"`
	SyncStrategy string `yaml:"sync_strategy" mapstructure:"sync_strategy"`
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`
	Locale       string `yaml:"locale" mapstructure:"locale"`
}

// Defaults returns the settings written to a fresh config.yaml.
func Defaults() Settings {
	return Settings{
		Backend:      DefaultBackend,
		SyncStrategy: types.SyncImmediate,
		LogLevel:     DefaultLogLevel,
		Locale:       DefaultLocale,
	}
}

// Path returns the location of config.yaml inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, fileExt)
}

// Load reads config.yaml from configDir. A missing file is not an error;
// defaults apply. FACULTY_SYNC_STRATEGY, FACULTY_LOG_LEVEL and
// FACULTY_LOCALE override the file. data_dir is not bound to the
// environment here; paths.ResolveDataDir handles FACULTY_DATA_DIR with
// lower precedence than the file.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyBackend, d.Backend)
	v.SetDefault(KeySyncStrategy, d.SyncStrategy)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLocale, d.Locale)

	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{KeySyncStrategy, KeyLogLevel, KeyLocale} {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// WriteDefault creates configDir and writes config.yaml with s if the file
// does not exist. It reports whether a file was written.
func WriteDefault(configDir string, s Settings) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := Path(configDir)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&s)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

// StoreConfig builds the Store configuration for the resolved data directory.
func (s Settings) StoreConfig(dataDir string) types.Config {
	return types.Config{
		Backend:      s.Backend,
		DataDir:      dataDir,
		SyncStrategy: s.SyncStrategy,
	}
}
