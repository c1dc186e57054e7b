package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envAPIBaseURL        = "AUCTIONHUB_API_URL"
	envRequestTimeout    = "AUCTIONHUB_REQUEST_TIMEOUT"
	envCountdownInterval = "AUCTIONHUB_COUNTDOWN_INTERVAL"
	envHealthInterval    = "AUCTIONHUB_HEALTH_INTERVAL"
	envPageSize          = "AUCTIONHUB_PAGE_SIZE"
	envDatabasePath      = "AUCTIONHUB_DB_PATH"
	envLogLevel          = "AUCTIONHUB_LOG_LEVEL"
)

// parseEnv loads envFile (if it exists) into the process environment without
// overriding variables that are already set, then overlays cfg with the
// AUCTIONHUB_* variables. Malformed values panic, like the other loaders.
func parseEnv(cfg *Config, envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(envAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(envRequestTimeout); ok && v != "" {
		cfg.RequestTimeout = mustDuration(v)
	}
	if v, ok := os.LookupEnv(envCountdownInterval); ok && v != "" {
		cfg.CountdownInterval = mustDuration(v)
	}
	if v, ok := os.LookupEnv(envHealthInterval); ok && v != "" {
		cfg.HealthInterval = mustDuration(v)
	}
	if v, ok := os.LookupEnv(envPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.PageSize = n
	}
	if v, ok := os.LookupEnv(envDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}

func mustDuration(v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}
