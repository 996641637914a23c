package router

import (
	"github.com/gin-gonic/gin"

	assethandler "github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/transport/handler"
	"github.com/Varsha6677/Crypto-Assignment/internal/platform/http/handler"
)

// NewRouter はアプリケーションの全ルートを登録したginエンジンを生成します。
func NewRouter(assets *assethandler.AssetHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// 登録済みアセットの一覧取得
		api.GET("/assets", assets.List)
		// アセットの新規登録（初期価格はCoinGeckoから取得）
		api.POST("/assets", assets.Create)
		// アセットの削除
		api.DELETE("/assets/:id", assets.Delete)
		// お気に入りフラグの反転
		api.PATCH("/assets/:id/favorite", assets.ToggleFavorite)
		// お気に入りアセットの一覧取得（キャッシュ禁止）
		api.GET("/favorites", assets.ListFavorites)
		// 全アセットの価格を一括更新
		api.POST("/update-prices", assets.RefreshPrices)
	}

	return r
}
