// Package dto defines data transfer objects for the assets feature's HTTP transport layer.
package dto

// CreateAssetReq represents the request body for POST /api/assets.
// It uses Gin's binding tags for validation.
type CreateAssetReq struct {
	Name        string `json:"name" binding:"required"`
	Symbol      string `json:"symbol" binding:"required"`
	CoingeckoID string `json:"coingeckoId" binding:"required"`
}
