// Package domain defines domain-level errors for the assets feature.
package domain

import "errors"

// Domain errors for asset operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrAssetNotFound indicates that no asset was found for the given key.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetAlreadyExists indicates that an asset with the given symbol
	// or CoinGecko ID already exists.
	ErrAssetAlreadyExists = errors.New("asset with this symbol or CoinGecko ID already exists")

	// ErrInvalidInput indicates that a required field is missing or malformed.
	ErrInvalidInput = errors.New("name, symbol, and CoinGecko ID are required")

	// ErrPriceUnavailable indicates that the upstream API has no quote for the
	// given CoinGecko ID. Returned during create; the caller should verify the ID.
	ErrPriceUnavailable = errors.New("could not fetch price for this CoinGecko ID")

	// ErrUpstreamUnavailable indicates a transport-level failure talking to the
	// quote API. Transient; safe to retry later.
	ErrUpstreamUnavailable = errors.New("quote service unavailable")
)
