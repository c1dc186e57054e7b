package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/auctionhub/internal/flagx"
)

// parseFlags populates Config from the short command-line flags. Only the
// flags it owns are parsed (see flagx.FilterArgs), so -c/-config can coexist.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-o", "-p", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "marketplace API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.CountdownInterval.Seconds()), "countdown refresh interval (in seconds)")
	health := fs.Int("o", int(cfg.HealthInterval.Seconds()), "server health check interval (in seconds)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "listing page size")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.CountdownInterval = time.Duration(*interval) * time.Second
	cfg.HealthInterval = time.Duration(*health) * time.Second
}
