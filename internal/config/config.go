package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	WorldBank   WorldBankConfig `toml:"worldbank"`
	Cache       CacheConfig     `toml:"cache"`
	Dashboard   DashboardConfig `toml:"dashboard"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// WorldBankConfig contains settings for the country-listing API.
type WorldBankConfig struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
	PerPage int    `toml:"per_page"`
}

// CacheConfig contains lookup cache settings.
type CacheConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
	MaxEntries int `toml:"max_entries"`
}

// DashboardConfig contains the year bounds offered by the dashboard filters.
type DashboardConfig struct {
	MinYear          int `toml:"min_year"`
	MaxYear          int `toml:"max_year"`
	DefaultStartYear int `toml:"default_start_year"`
	DefaultEndYear   int `toml:"default_end_year"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// IsDevMode returns true when the environment is set to dev.
func (c *Config) IsDevMode() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// BaseURL returns the externally reachable base URL of the server.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}

// Validate checks mandatory configuration and returns a list of issues.
func (c *Config) Validate() []string {
	var issues []string
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.WorldBank.URL == "" {
		issues = append(issues, "worldbank.url must not be empty")
	}
	if c.Dashboard.MinYear >= c.Dashboard.MaxYear {
		issues = append(issues, fmt.Sprintf("dashboard.min_year (%d) must be below dashboard.max_year (%d)",
			c.Dashboard.MinYear, c.Dashboard.MaxYear))
	}
	if c.Cache.TTLSeconds < 0 {
		issues = append(issues, fmt.Sprintf("cache.ttl_seconds must not be negative, got %d", c.Cache.TTLSeconds))
	}
	return issues
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies ECONDASH_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("ECONDASH_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("ECONDASH_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("ECONDASH_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if url := os.Getenv("ECONDASH_WORLDBANK_URL"); url != "" {
		config.WorldBank.URL = url
	}
	if ttl := os.Getenv("ECONDASH_CACHE_TTL"); ttl != "" {
		if t, err := strconv.Atoi(ttl); err == nil {
			config.Cache.TTLSeconds = t
		}
	}
	if level := os.Getenv("ECONDASH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("ECONDASH_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
