package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/auctionhub/internal/flagx"
	"github.com/dmitrijs2005/auctionhub/internal/timex"
	"gopkg.in/yaml.v2"
)

// FileConfig is the on-disk representation; it is only used for decoding.
type FileConfig struct {
	APIBaseURL        string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	CountdownInterval timex.Duration `json:"countdown_interval" yaml:"countdown_interval"`
	HealthInterval    timex.Duration `json:"health_interval" yaml:"health_interval"`
	PageSize          int            `json:"page_size" yaml:"page_size"`
	DatabasePath      string         `json:"database_path" yaml:"database_path"`
	LogLevel          string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the non-zero values of the file named by
// -c/-config. It panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.CountdownInterval.Duration > 0 {
		cfg.CountdownInterval = fc.CountdownInterval.Duration
	}
	if fc.HealthInterval.Duration > 0 {
		cfg.HealthInterval = fc.HealthInterval.Duration
	}
	if fc.PageSize > 0 {
		cfg.PageSize = fc.PageSize
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
