package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, time.Second, c.CountdownInterval)
	assert.Equal(t, 30*time.Second, c.HealthInterval)
	assert.Equal(t, 12, c.PageSize)
	assert.Equal(t, "auctionhub.db", c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	t.Chdir(t.TempDir())

	os.Args = []string{"cli", "-a", "http://market:9000/api", "-p", "24"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://market:9000/api", cfg.APIBaseURL)
	assert.Equal(t, 24, cfg.PageSize)
	assert.Equal(t, time.Second, cfg.CountdownInterval)
}
