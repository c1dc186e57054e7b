package config

import "time"

// Config holds runtime settings for the auctionhub CLI.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	CountdownInterval time.Duration
	HealthInterval    time.Duration
	PageSize          int
	DatabasePath      string
	LogLevel          string
}

// LoadDefaults populates c with defaults suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.CountdownInterval = time.Second
	c.HealthInterval = 30 * time.Second
	c.PageSize = 12
	c.DatabasePath = "auctionhub.db"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the config file, the environment and
// finally command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg, ".env")
	parseFlags(cfg)
	return cfg
}
