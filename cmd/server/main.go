package main

import (
	"log"

	"github.com/Varsha6677/Crypto-Assignment/internal/app/di"
	"github.com/Varsha6677/Crypto-Assignment/internal/app/router"
	assetadapters "github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/adapters"
	assethandler "github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/transport/handler"
	assetusecase "github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/usecase"
	"github.com/Varsha6677/Crypto-Assignment/internal/platform/config"
	infradb "github.com/Varsha6677/Crypto-Assignment/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg)

	// Repository
	assetRepo := assetadapters.NewAssetRepository(db)

	// 外部価格API
	market := di.NewMarket()

	// Usecase
	assetUC := assetusecase.NewAssetUsecase(assetRepo, market)

	// Handler
	assetH := assethandler.NewAssetHandler(assetUC)

	// ルータ生成
	router := router.NewRouter(assetH)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
