package dto

import (
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain/entity"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/usecase"
)

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// RefreshResponse is the payload for POST /api/update-prices.
type RefreshResponse struct {
	Message string               `json:"message"`
	Assets  []entity.Asset       `json:"assets"`
	Stats   usecase.RefreshStats `json:"stats"`
}
