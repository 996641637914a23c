// Package handler はassetsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain/entity"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/transport/http/dto"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/usecase"
)

// AssetUsecase はアセット操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AssetUsecase interface {
	// Create は新しいアセットを検証・登録し、作成されたアセットを返します。
	Create(ctx context.Context, name, symbol, coingeckoID string) (*entity.Asset, error)
	// ToggleFavorite はお気に入りフラグを反転し、更新後のアセットを返します。
	ToggleFavorite(ctx context.Context, id uint) (*entity.Asset, error)
	// Delete は指定されたアセットを完全に削除します。
	Delete(ctx context.Context, id uint) error
	// ListAll はすべてのアセットをID昇順で返します。
	ListAll(ctx context.Context) ([]entity.Asset, error)
	// ListFavorites はお気に入りのアセットのみをID昇順で返します。
	ListFavorites(ctx context.Context) ([]entity.Asset, error)
	// RefreshAllPrices は全アセットの価格を1回のバッチ呼び出しで更新します。
	RefreshAllPrices(ctx context.Context) (*usecase.RefreshResult, error)
}

// AssetHandler はアセット操作のHTTPリクエストを処理します。
type AssetHandler struct {
	uc AssetUsecase
}

// NewAssetHandler はAssetHandlerの新しいインスタンスを生成します。
func NewAssetHandler(uc AssetUsecase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// List は登録済み全アセットの一覧を取得するAPIです。
func (h *AssetHandler) List(c *gin.Context) {
	assets, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if assets == nil {
		assets = []entity.Asset{}
	}
	c.JSON(http.StatusOK, assets)
}

// ListFavorites はお気に入りアセットの一覧を取得するAPIです。
// お気に入り状態は頻繁に変化するため、中間キャッシュを明示的に無効化します。
func (h *AssetHandler) ListFavorites(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")

	assets, err := h.uc.ListFavorites(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if assets == nil {
		assets = []entity.Asset{}
	}
	c.JSON(http.StatusOK, assets)
}

// Create は新しいアセットを登録するAPIです。
// - リクエストJSONをCreateAssetReqにバインド（必須フィールドの検証）
// - 重複時は409、価格が取得できない場合は404を返却
// - 成功時は作成されたアセットと201を返却
func (h *AssetHandler) Create(c *gin.Context) {
	var req dto.CreateAssetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create asset validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "name, symbol, and CoinGecko ID are required"})
		return
	}

	asset, err := h.uc.Create(c.Request.Context(), req.Name, req.Symbol, req.CoingeckoID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("asset created", "symbol", asset.Symbol, "coingecko_id", asset.CoingeckoID)
	c.JSON(http.StatusCreated, asset)
}

// ToggleFavorite はアセットのお気に入りフラグを反転するAPIです。
func (h *AssetHandler) ToggleFavorite(c *gin.Context) {
	id, ok := h.assetID(c)
	if !ok {
		return
	}

	asset, err := h.uc.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Delete はアセットを削除するAPIです。
func (h *AssetHandler) Delete(c *gin.Context) {
	id, ok := h.assetID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("asset deleted", "asset_id", id)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Asset deleted successfully"})
}

// RefreshPrices は全アセットの価格を一括更新するAPIです。
// アセットが1件もない場合はメッセージのみを返します（エラーではありません）。
func (h *AssetHandler) RefreshPrices(c *gin.Context) {
	result, err := h.uc.RefreshAllPrices(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(result.Assets) == 0 && result.Stats.Total == 0 {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "No assets to update"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		Message: fmt.Sprintf("Prices updated: %d successful, %d failed", result.Stats.Successful, result.Stats.Failed),
		Assets:  result.Assets,
		Stats:   result.Stats,
	})
}

// assetID はパスパラメータからアセットIDを取り出します。
// 数値でない場合は400を返し、falseを返します。
func (h *AssetHandler) assetID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid asset ID"})
		return 0, false
	}
	return uint(id), true
}

// respondError はドメインエラーをHTTPステータスコードにマッピングします。
// 予期しないエラーは詳細をログに残し、呼び出し元には汎用メッセージのみを返します。
func (h *AssetHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAssetAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAssetNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPriceUnavailable):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Could not fetch price for this CoinGecko ID. Please verify the ID is correct."})
	default:
		slog.Error("asset request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
