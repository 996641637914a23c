package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain/entity"
)

// SeedAsset はシードジョブで投入する銘柄の定義です。
type SeedAsset struct {
	Name        string
	Symbol      string
	CoingeckoID string
}

// SeedAssets は指定された銘柄をシンボルをキーに一括投入（upsert）します。
//
// 初期価格はCoinGeckoへの1回のバッチ呼び出しで取得します。上流の呼び出しに
// 失敗した場合でもシード自体は中断せず、新規行は価格ゼロで投入し、既存行の
// 最終取得価格は維持します（ゼロで上書きしません）。対話的な登録（Create）が
// 価格取得失敗で中断するのとは意図的に異なる動作です。
func (u *AssetUsecase) SeedAssets(ctx context.Context, defs []SeedAsset) error {
	// Createと同じ正規化を適用する。呼び出し側の定義に頼るとユニーク制約が条件付きになる。
	norm := make([]SeedAsset, len(defs))
	ids := make([]string, 0, len(defs))
	for i, d := range defs {
		norm[i] = SeedAsset{
			Name:        strings.TrimSpace(d.Name),
			Symbol:      strings.ToUpper(strings.TrimSpace(d.Symbol)),
			CoingeckoID: strings.ToLower(strings.TrimSpace(d.CoingeckoID)),
		}
		ids = append(ids, norm[i].CoingeckoID)
	}

	quotes, err := u.prices.FetchPrices(ctx, ids)
	havePrices := err == nil
	if err != nil {
		slog.Warn("quote fetch failed, keeping existing prices", "error", err)
		quotes = map[string]float64{}
	}

	for _, d := range norm {
		asset := &entity.Asset{
			Name:        d.Name,
			Symbol:      d.Symbol,
			CoingeckoID: d.CoingeckoID,
			Price:       quotes[d.CoingeckoID],
			Favorite:    false,
		}
		if err := u.assets.UpsertBySymbol(ctx, asset, havePrices); err != nil {
			return err
		}
		slog.Info("seeded asset", "symbol", asset.Symbol, "price", asset.Price)
	}
	return nil
}
