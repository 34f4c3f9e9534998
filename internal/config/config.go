package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	DataFile  string       `mapstructure:"data_file"`
	OutputDir string       `mapstructure:"output_dir"`
	Market    MarketConfig `mapstructure:"market"`
}

// MarketConfig defines the market-data provider settings
type MarketConfig struct {
	BaseURL        string   `mapstructure:"base_url"`
	StocksURL      string   `mapstructure:"stocks_url"`
	APIKeyEnv      string   `mapstructure:"api_key_env"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
	Currencies     []string `mapstructure:"currencies"`
	Stocks         []string `mapstructure:"stocks"`
}

// Timeout returns the provider timeout as a duration.
func (m MarketConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("data_file", "data/operations.csv")
	v.SetDefault("output_dir", ".")
	v.SetDefault("market.api_key_env", "API_KEY")
	v.SetDefault("market.timeout_seconds", 15)
	v.SetDefault("market.currencies", []string{"USD", "EUR"})
	v.SetDefault("market.stocks", []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"})

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
