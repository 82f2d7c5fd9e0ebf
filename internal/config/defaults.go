package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 4280,
			Host: "localhost",
		},
		WorldBank: WorldBankConfig{
			URL:     "http://api.worldbank.org/v2",
			Timeout: "10s",
			PerPage: 300,
		},
		Cache: CacheConfig{
			TTLSeconds: 3600,
			MaxEntries: 100,
		},
		Dashboard: DashboardConfig{
			MinYear:          2010,
			MaxYear:          2023,
			DefaultStartYear: 2015,
			DefaultEndYear:   2023,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
