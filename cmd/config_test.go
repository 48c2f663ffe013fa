package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fintrack.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	configContent := `
feed_url = "https://docs.google.com/spreadsheets/d/e/KEY/pub?output=csv"
script_url = "https://script.google.com/macros/s/KEY/exec"
goal = 25000000
currency = "USD"
cache_ttl = "90s"
cache_dir = "/var/cache/fintrack"
`

	config, err := LoadConfig(writeConfig(t, configContent))
	require.NoError(t, err)

	assert.Equal(t, "https://docs.google.com/spreadsheets/d/e/KEY/pub?output=csv", config.FeedURL)
	assert.Equal(t, "https://script.google.com/macros/s/KEY/exec", config.ScriptURL)
	assert.Equal(t, float64(25_000_000), config.Goal)
	assert.Equal(t, "USD", config.Currency)
	assert.Equal(t, 90*time.Second, config.CacheTTL)
	assert.Equal(t, "/var/cache/fintrack", config.CacheDir)
}

func TestLoadConfig_Defaults(t *testing.T) {
	configContent := `
feed_url = "https://example.com/feed.csv"
`

	config, err := LoadConfig(writeConfig(t, configContent))
	require.NoError(t, err)

	assert.Equal(t, "IDR", config.Currency)
	assert.Equal(t, float64(10_000_000), config.Goal)
	assert.Equal(t, 60*time.Second, config.CacheTTL)
	assert.Empty(t, config.ScriptURL)
	assert.Empty(t, config.CacheDir)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("FINTRACK_CURRENCY", "EUR")
	t.Setenv("FINTRACK_GOAL", "5000000")

	configContent := `
currency = "IDR"
`

	config, err := LoadConfig(writeConfig(t, configContent))
	require.NoError(t, err)

	// The environment takes precedence over the file.
	assert.Equal(t, "EUR", config.Currency)
	assert.Equal(t, float64(5_000_000), config.Goal)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.toml"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `feed_url = `))
	assert.Error(t, err)
	assert.Nil(t, config)
}
