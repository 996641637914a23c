// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/Varsha6677/Crypto-Assignment/internal/platform/externalapi/coingecko"
	infrahttp "github.com/Varsha6677/Crypto-Assignment/internal/platform/http"
)

// NewMarket creates a fully configured CoinGeckoMarket with HTTP client.
func NewMarket() *coingecko.CoinGeckoMarket {
	cfg := coingecko.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coingecko.NewCoinGeckoMarket(cfg, httpClient)
}
