// Package config loads runtime configuration for the auctionhub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. A .env file in the working directory plus AUCTIONHUB_* environment
//     variables.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the marketplace API
//	-t int      request timeout (seconds)
//	-i int      countdown refresh interval (seconds)
//	-o int      server health check interval (seconds)
//	-p int      page size for listings
//	-d string   path of the local database file
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
// Intervals use timex.Duration, so they may be strings like "3s" or integer
// nanoseconds:
//
//	api_base_url: http://localhost:8080/api
//	request_timeout: 10s
//	countdown_interval: 1s
//	health_interval: 30s
//	page_size: 12
//	database_path: auctionhub.db
//	log_level: info
package config
