package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Create a temporary config file
	configContent := `
data_file = "testdata/operations.csv"
output_dir = "out"

[market]
base_url = "https://rates.example.com"
stocks_url = "https://stocks.example.com"
api_key_env = "TEST_API_KEY"
timeout_seconds = 5
currencies = ["USD"]
stocks = ["AAPL", "TSLA"]
`

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	// Load the config
	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	// Verify config values
	assert.Equal(t, "testdata/operations.csv", config.DataFile)
	assert.Equal(t, "out", config.OutputDir)

	// Check market config
	assert.Equal(t, "https://rates.example.com", config.Market.BaseURL)
	assert.Equal(t, "https://stocks.example.com", config.Market.StocksURL)
	assert.Equal(t, "TEST_API_KEY", config.Market.APIKeyEnv)
	assert.Equal(t, 5*time.Second, config.Market.Timeout())
	assert.Equal(t, []string{"USD"}, config.Market.Currencies)
	assert.Equal(t, []string{"AAPL", "TSLA"}, config.Market.Stocks)
}

func TestLoadConfig_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("output_dir = \"snapshots\"\n"), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "data/operations.csv", config.DataFile)
	assert.Equal(t, "snapshots", config.OutputDir)
	assert.Equal(t, "API_KEY", config.Market.APIKeyEnv)
	assert.Equal(t, 15*time.Second, config.Market.Timeout())
	assert.Equal(t, []string{"USD", "EUR"}, config.Market.Currencies)
	assert.Equal(t, []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}, config.Market.Stocks)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("nonexistent.toml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}
