package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/lanes/internal/config/colors"
)

// Storage drivers understood by the database package
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig  `yaml:"storage"`
	Log         LogConfig      `yaml:"log"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	Theme       colors.Palette `yaml:"theme"`
}

// StorageConfig selects and configures the board persistence backend
type StorageConfig struct {
	// Driver is one of sqlite, file, redis, memory
	Driver string `yaml:"driver"`

	// Path is the sqlite database file or the file driver's directory
	Path string `yaml:"path"`

	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds connection settings for the redis driver
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Path  string `yaml:"path"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from LANES_CONFIG, or from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	if path := os.Getenv("LANES_CONFIG"); path != "" {
		return LoadFile(path)
	}

	configPath, err := getConfigPath()
	if err != nil {
		// Can't determine config path, run with defaults
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path.
// A missing file yields the default config; a malformed one is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects settings the rest of the program can't act on
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverFile, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("invalid storage driver %q (must be: sqlite, file, redis, memory)", c.Storage.Driver)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be: debug, info, warn, error)", c.Log.Level)
	}
	return nil
}

// DataDir is where the default database and logs live (~/.lanes)
func DataDir() string {
	if dir := os.Getenv("LANES_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lanes"
	}
	return filepath.Join(home, ".lanes")
}

// DefaultStoragePath is the storage location used when none is configured.
// Drivers that don't keep local files get an empty path.
func DefaultStoragePath(driver string) string {
	switch driver {
	case DriverSQLite:
		return filepath.Join(DataDir(), "lanes.db")
	case DriverFile:
		return filepath.Join(DataDir(), "slots")
	}
	return ""
}

// SetDriver switches the storage driver. A path that was only the old
// driver's default follows the switch; an explicitly configured path stays.
func (c *Config) SetDriver(driver string) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	if c.Storage.Path == "" || c.Storage.Path == DefaultStoragePath(c.Storage.Driver) {
		c.Storage.Path = DefaultStoragePath(driver)
	}
	c.Storage.Driver = driver
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lanes", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lanes", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.Driver = strings.ToLower(c.Storage.Driver)
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverSQLite
	}
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultStoragePath(c.Storage.Driver)
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = "localhost:6379"
	}

	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Path == "" {
		c.Log.Path = filepath.Join(DataDir(), "logs", "lanes.log")
	}

	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}
