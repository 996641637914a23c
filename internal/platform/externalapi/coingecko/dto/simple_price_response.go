// Package dto defines response shapes for the CoinGecko API.
package dto

// SimplePriceResponse is the body of GET /simple/price.
// Keys are CoinGecko IDs; IDs unknown to the upstream are simply absent.
type SimplePriceResponse map[string]CoinPrice

// CoinPrice holds the quoted price per fiat currency.
type CoinPrice struct {
	USD float64 `json:"usd"`
}
