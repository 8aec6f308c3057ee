package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/cardi/internal/logging"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Environment variables that override the config file
const (
	EnvDataDir   = "CARDI_DATA_DIR"
	EnvBackend   = "CARDI_BACKEND"
	EnvLogLevel  = "CARDI_LOG_LEVEL"
	EnvThemeFile = "CARDI_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	Log         LogConfig     `yaml:"log"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`

	// path the config was loaded from; Save writes back there
	path string
}

// StorageConfig selects where project records live
type StorageConfig struct {
	// Backend is "file" (one record file per project) or "sqlite"
	Backend string `yaml:"backend" json:"backend"`
	// DataDir holds the record files of the file backend
	DataDir string `yaml:"data_dir" json:"data_dir"`
	// Format is the record file format of the file backend: json or yaml
	Format string `yaml:"format" json:"format"`
	// DBPath is the database file of the sqlite backend
	DBPath string `yaml:"db_path" json:"db_path"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from CARDI_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with environment variables
func applyEnv(config *Config) {
	if v := os.Getenv(EnvDataDir); v != "" {
		config.Storage.DataDir = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		config.Storage.Backend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Log.Level = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return finish(&Config{})
	}
	return load(configPath, false)
}

// LoadFrom loads config from an explicit path. Unlike Load, a missing
// file is an error.
func LoadFrom(path string) (*Config, error) {
	if path == "" {
		return Load()
	}
	return load(path, true)
}

func load(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) && !required {
		// Return default config if file doesn't exist
		return finish(&Config{path: configPath})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	config.path = configPath

	return finish(&config)
}

// finish layers env, theme file and defaults over a parsed config
func finish(config *Config) (*Config, error) {
	applyEnv(config)
	loadThemeFile(config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (must be: %s, %s)", c.Storage.Backend, BackendFile, BackendSQLite)
	}

	switch c.Storage.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown record format %q (must be: json, yaml)", c.Storage.Format)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Path returns the file the config was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// Save saves the config to the file it was loaded from, or to the
// user's config directory
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		if configPath, err = getConfigPath(); err != nil {
			return err
		}
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config to configPath
func (c *Config) SaveTo(configPath string) error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return err
	}
	c.path = configPath
	return nil
}

// DefaultPath returns where Load looks for the config file
func DefaultPath() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "cardi", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "cardi", "config.yaml"), nil
}

// appDir returns ~/.cardi, or .cardi when there is no home directory
func appDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".cardi"
	}
	return filepath.Join(homeDir, ".cardi")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	c.Storage.Backend = strings.ToLower(c.Storage.Backend)

	if c.Storage.DataDir == "" {
		c.Storage.DataDir = filepath.Join(appDir(), "data")
	}
	c.Storage.DataDir = ExpandHome(c.Storage.DataDir)

	switch strings.ToLower(c.Storage.Format) {
	case "":
		c.Storage.Format = "json"
	case "yml":
		c.Storage.Format = "yaml"
	default:
		c.Storage.Format = strings.ToLower(c.Storage.Format)
	}

	if c.Storage.DBPath == "" {
		c.Storage.DBPath = filepath.Join(appDir(), "cardi.db")
	}
	c.Storage.DBPath = ExpandHome(c.Storage.DBPath)

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
