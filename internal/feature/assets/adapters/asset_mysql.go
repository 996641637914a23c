// Package adapters はassetsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain/entity"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// assetMySQL はAssetRepositoryインターフェースのMySQL実装です。
type assetMySQL struct {
	db *gorm.DB
}

var _ usecase.AssetRepository = (*assetMySQL)(nil)

// NewAssetRepository は指定されたDB接続でassetMySQLリポジトリの新しいインスタンスを生成します。
func NewAssetRepository(db *gorm.DB) *assetMySQL {
	return &assetMySQL{db: db}
}

// ListAll はすべてのアセットをID昇順で返します。
func (r *assetMySQL) ListAll(ctx context.Context) ([]entity.Asset, error) {
	var assets []entity.Asset
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// ListFavorites はお気に入りのアセットのみをID昇順で返します。
func (r *assetMySQL) ListFavorites(ctx context.Context) ([]entity.Asset, error) {
	var assets []entity.Asset
	if err := r.db.WithContext(ctx).
		Where("favorite = ?", true).
		Order("id ASC").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// FindByID は指定されたIDに一致するアセットを取得します。
// アセットが存在しない場合、domain.ErrAssetNotFoundを返します。
func (r *assetMySQL) FindByID(ctx context.Context, id uint) (*entity.Asset, error) {
	var asset entity.Asset
	if err := r.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// FindBySymbol は指定されたシンボルに一致するアセットを取得します。
// シンボルは正規化済み（大文字）であることを前提とします。
func (r *assetMySQL) FindBySymbol(ctx context.Context, symbol string) (*entity.Asset, error) {
	var asset entity.Asset
	if err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// FindByCoingeckoID は指定されたCoinGecko IDに一致するアセットを取得します。
// CoinGecko IDは正規化済み（小文字）であることを前提とします。
func (r *assetMySQL) FindByCoingeckoID(ctx context.Context, coingeckoID string) (*entity.Asset, error) {
	var asset entity.Asset
	if err := r.db.WithContext(ctx).
		Where("coingecko_id = ?", coingeckoID).
		First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// Create は新しいアセットを永続化します。
// シンボルまたはCoinGecko IDが重複する場合、domain.ErrAssetAlreadyExistsを返します。
func (r *assetMySQL) Create(ctx context.Context, asset *entity.Asset) error {
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAssetAlreadyExists
		}
		return err
	}
	return nil
}

// UpdatePrice は指定されたアセットの価格のみを更新します。
func (r *assetMySQL) UpdatePrice(ctx context.Context, id uint, price float64) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Asset{}).
		Where("id = ?", id).
		Update("price", price)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// UpdateFavorite は指定されたアセットのお気に入りフラグのみを更新します。
func (r *assetMySQL) UpdateFavorite(ctx context.Context, id uint, favorite bool) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Asset{}).
		Where("id = ?", id).
		Update("favorite", favorite)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// Delete は指定されたアセットを完全に削除します。
// アセットが存在しない場合、domain.ErrAssetNotFoundを返します。
func (r *assetMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Asset{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// UpsertBySymbol はシンボルをキーにアセットを挿入または更新します（シードジョブ用）。
// 既存行がある場合、CoinGecko IDと（setPriceがtrueのときのみ）価格を上書きします。
// setPriceがfalseなら既存行の最終取得価格を維持します。
func (r *assetMySQL) UpsertBySymbol(ctx context.Context, asset *entity.Asset, setPrice bool) error {
	cols := []string{"coingecko_id"}
	if setPrice {
		cols = append(cols, "price")
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(asset).Error
}
