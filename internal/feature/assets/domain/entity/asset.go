// Package entity defines the domain models for the assets feature.
package entity

import "time"

// Asset represents a tracked cryptocurrency in the portfolio.
// Symbol is stored uppercase and CoingeckoID lowercase; both are unique
// across all assets.
type Asset struct {
	// ID is the unique identifier for the asset.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name of the cryptocurrency (e.g. "Bitcoin").
	Name string `gorm:"size:255;not null" json:"name"`

	// Symbol is the ticker symbol, normalized to uppercase (e.g. "BTC").
	Symbol string `gorm:"size:20;not null;uniqueIndex" json:"symbol"`

	// CoingeckoID is the identifier used to query the CoinGecko API,
	// normalized to lowercase (e.g. "bitcoin").
	CoingeckoID string `gorm:"size:100;not null;uniqueIndex" json:"coingeckoId"`

	// Price is the last known price in USD. Zero means no usable quote
	// has been obtained yet (seed path only).
	Price float64 `gorm:"not null;default:0" json:"price"`

	// Favorite marks the asset as a user favorite.
	Favorite bool `gorm:"not null;default:false" json:"favorite"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
