// Package coingecko provides a client for the CoinGecko cryptocurrency price API.
package coingecko

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds configuration for the CoinGecko API client.
type Config struct {
	// BaseURL is the base URL for the API.
	BaseURL string `envconfig:"COINGECKO_BASE_URL" default:"https://api.coingecko.com/api/v3"`

	// APIKey is the optional demo API key sent with every request.
	APIKey string `envconfig:"COINGECKO_API_KEY"`

	// Timeout is the HTTP request timeout.
	Timeout time.Duration `envconfig:"COINGECKO_TIMEOUT" default:"10s"`
}

// LoadConfig loads CoinGecko configuration from environment variables.
func LoadConfig() Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load coingecko config: %v", err)
	}
	return cfg
}
