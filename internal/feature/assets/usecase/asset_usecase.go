// Package usecase はassetsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain/entity"
)

// AssetRepository はアセットエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AssetRepository interface {
	// ListAll はすべてのアセットをID昇順で返します。
	ListAll(ctx context.Context) ([]entity.Asset, error)

	// ListFavorites はお気に入りのアセットのみをID昇順で返します。
	ListFavorites(ctx context.Context) ([]entity.Asset, error)

	// FindByID は指定されたIDに一致するアセットを取得します。
	// 存在しない場合、domain.ErrAssetNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Asset, error)

	// FindBySymbol は正規化済みシンボルに一致するアセットを取得します。
	FindBySymbol(ctx context.Context, symbol string) (*entity.Asset, error)

	// FindByCoingeckoID は正規化済みCoinGecko IDに一致するアセットを取得します。
	FindByCoingeckoID(ctx context.Context, coingeckoID string) (*entity.Asset, error)

	// Create は新しいアセットを永続化します。
	// キーが重複する場合、domain.ErrAssetAlreadyExistsを返します。
	Create(ctx context.Context, asset *entity.Asset) error

	// UpdatePrice は指定されたアセットの価格のみを更新します。
	UpdatePrice(ctx context.Context, id uint, price float64) error

	// UpdateFavorite は指定されたアセットのお気に入りフラグのみを更新します。
	UpdateFavorite(ctx context.Context, id uint, favorite bool) error

	// Delete は指定されたアセットを完全に削除します。
	Delete(ctx context.Context, id uint) error

	// UpsertBySymbol はシンボルをキーにアセットを挿入または更新します。
	// setPriceがfalseの場合、既存行の価格は上書きされません。
	UpsertBySymbol(ctx context.Context, asset *entity.Asset, setPrice bool) error
}

// PriceRepository は外部価格APIを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/externalapi）ではなくコンシューマー（usecase）が定義します。
type PriceRepository interface {
	// FetchPrices は指定されたCoinGecko IDの現在価格を1回のバッチ呼び出しで取得します。
	// 上流が認識しないIDは結果のマップに含まれません。
	FetchPrices(ctx context.Context, ids []string) (map[string]float64, error)
}

// AssetUsecase はアセット操作のビジネスロジックを提供します。
type AssetUsecase struct {
	assets AssetRepository
	prices PriceRepository
}

// NewAssetUsecase はAssetUsecaseの新しいインスタンスを生成します。
func NewAssetUsecase(assets AssetRepository, prices PriceRepository) *AssetUsecase {
	return &AssetUsecase{assets: assets, prices: prices}
}

// Create は新しいアセットを登録します。
// 入力の検証、正規化、重複チェックの後、CoinGeckoから初期価格を取得して永続化します。
// 上流に価格がない場合は登録を中断します（ゼロ価格で完了させません）。
func (u *AssetUsecase) Create(ctx context.Context, name, symbol, coingeckoID string) (*entity.Asset, error) {
	name = strings.TrimSpace(name)
	symbol = strings.TrimSpace(symbol)
	coingeckoID = strings.TrimSpace(coingeckoID)
	if name == "" || symbol == "" || coingeckoID == "" {
		return nil, domain.ErrInvalidInput
	}

	// 正規化は重複チェックより先に行う。順序を変えると大文字小文字違いの重複を見逃す。
	symbol = strings.ToUpper(symbol)
	coingeckoID = strings.ToLower(coingeckoID)

	if err := u.checkDuplicate(ctx, symbol, coingeckoID); err != nil {
		return nil, err
	}

	quotes, err := u.prices.FetchPrices(ctx, []string{coingeckoID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	price, ok := quotes[coingeckoID]
	if !ok || price <= 0 {
		return nil, domain.ErrPriceUnavailable
	}

	asset := &entity.Asset{
		Name:        name,
		Symbol:      symbol,
		CoingeckoID: coingeckoID,
		Price:       price,
		Favorite:    false,
	}
	if err := u.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// checkDuplicate は正規化済みのシンボルとCoinGecko IDのいずれかが既に登録済みかを検証します。
func (u *AssetUsecase) checkDuplicate(ctx context.Context, symbol, coingeckoID string) error {
	if _, err := u.assets.FindBySymbol(ctx, symbol); err == nil {
		return domain.ErrAssetAlreadyExists
	} else if !errors.Is(err, domain.ErrAssetNotFound) {
		return err
	}

	if _, err := u.assets.FindByCoingeckoID(ctx, coingeckoID); err == nil {
		return domain.ErrAssetAlreadyExists
	} else if !errors.Is(err, domain.ErrAssetNotFound) {
		return err
	}
	return nil
}

// ToggleFavorite は指定されたアセットのお気に入りフラグを反転し、更新後のアセットを返します。
// 2回適用すると元の状態に戻ります（冪等なセットではなく真の反転です）。
func (u *AssetUsecase) ToggleFavorite(ctx context.Context, id uint) (*entity.Asset, error) {
	asset, err := u.assets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.assets.UpdateFavorite(ctx, id, !asset.Favorite); err != nil {
		return nil, err
	}
	asset.Favorite = !asset.Favorite
	return asset, nil
}

// Delete は指定されたアセットを完全に削除します。
func (u *AssetUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.assets.FindByID(ctx, id); err != nil {
		return err
	}
	return u.assets.Delete(ctx, id)
}

// ListAll はすべてのアセットをID昇順で返します。
func (u *AssetUsecase) ListAll(ctx context.Context) ([]entity.Asset, error) {
	return u.assets.ListAll(ctx)
}

// ListFavorites はお気に入りのアセットのみをID昇順で返します。
func (u *AssetUsecase) ListFavorites(ctx context.Context) ([]entity.Asset, error) {
	return u.assets.ListFavorites(ctx)
}
