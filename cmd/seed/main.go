package main

import (
	"context"
	"log"
	"time"

	"github.com/Varsha6677/Crypto-Assignment/internal/app/di"
	assetadapters "github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/adapters"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/usecase"
	"github.com/Varsha6677/Crypto-Assignment/internal/platform/config"
	infradb "github.com/Varsha6677/Crypto-Assignment/internal/platform/db"
)

// defaultAssets は初期投入する銘柄のリストです。
var defaultAssets = []usecase.SeedAsset{
	{Name: "Bitcoin", Symbol: "BTC", CoingeckoID: "bitcoin"},
	{Name: "Ethereum", Symbol: "ETH", CoingeckoID: "ethereum"},
	{Name: "Cardano", Symbol: "ADA", CoingeckoID: "cardano"},
	{Name: "Solana", Symbol: "SOL", CoingeckoID: "solana"},
	{Name: "Polkadot", Symbol: "DOT", CoingeckoID: "polkadot"},
	{Name: "Dogecoin", Symbol: "DOGE", CoingeckoID: "dogecoin"},
	{Name: "Shiba Inu", Symbol: "SHIB", CoingeckoID: "shiba-inu"},
	{Name: "Litecoin", Symbol: "LTC", CoingeckoID: "litecoin"},
	{Name: "Tron", Symbol: "TRX", CoingeckoID: "tron"},
	{Name: "Uniswap", Symbol: "UNI", CoingeckoID: "uniswap"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := infradb.OpenDB(cfg)
	assetRepo := assetadapters.NewAssetRepository(db)
	market := di.NewMarket()
	uc := usecase.NewAssetUsecase(assetRepo, market)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := uc.SeedAssets(ctx, defaultAssets); err != nil {
		log.Fatal(err)
	}
	log.Println("seed ok")
}
