package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/quantmind-br/sling/internal/catalog"
)

// Config represents the application configuration
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Launch  LaunchConfig  `mapstructure:"launch"`
	Logging LoggingConfig `mapstructure:"logging"`
	Entries []EntryConfig `mapstructure:"entries"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	ExtraRoots  []string `mapstructure:"extra_roots"`
	HistoryFile string   `mapstructure:"history_file"`
	LogFile     string   `mapstructure:"log_file"`
}

// LaunchConfig contains launch behavior configuration
type LaunchConfig struct {
	Terminal string `mapstructure:"terminal"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// EntryConfig is a user-declared launchable item. Name and Exec are
// both required; an entry missing either is dropped at merge time.
type EntryConfig struct {
	Name     string `mapstructure:"name"`
	Exec     string `mapstructure:"exec"`
	Terminal bool   `mapstructure:"terminal"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "sling"))
	}
	viper.AddConfigPath(".")

	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("SLING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Expand paths
	for i, root := range cfg.Paths.ExtraRoots {
		cfg.Paths.ExtraRoots[i] = expandPath(root)
	}
	cfg.Paths.HistoryFile = expandPath(cfg.Paths.HistoryFile)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	return &cfg, nil
}

// Items converts the user-declared entries into catalog items, ready
// to be merged with scan output before sorting. Malformed entries are
// dropped whole, never partially admitted.
func (c *Config) Items() []catalog.Item {
	items := make([]catalog.Item, 0, len(c.Entries))
	for _, e := range c.Entries {
		if e.Name == "" || e.Exec == "" {
			continue
		}
		items = append(items, catalog.Item{
			Name:     e.Name,
			Path:     e.Exec,
			Terminal: e.Terminal,
		})
	}
	return items
}

// setDefaults sets default configuration values
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	dataDir := filepath.Join(homeDir, ".local", "share", "sling")

	viper.SetDefault("paths.extra_roots", []string{})
	viper.SetDefault("paths.history_file", filepath.Join(dataDir, "history.db"))
	viper.SetDefault("paths.log_file", filepath.Join(dataDir, "sling.log"))

	viper.SetDefault("launch.terminal", "")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
