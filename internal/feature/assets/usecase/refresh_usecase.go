package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain"
	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/domain/entity"
)

// RefreshStats は一括価格更新の結果件数です。
// Totalは実際に実行された更新の件数（Successful + Failed）であり、
// 有効な価格が得られなかったアセットはどのカウンタにも含まれません。
type RefreshStats struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

// RefreshResult は一括価格更新の結果です。
type RefreshResult struct {
	Assets []entity.Asset
	Stats  RefreshStats
}

// RefreshAllPrices は登録済み全アセットの価格を一括更新します。
//
// CoinGeckoへの問い合わせはアセット数に関わらず1回のバッチ呼び出しです。
// 各アセットの更新は独立して並行実行され、1件の失敗が他の更新を妨げたり
// ロールバックさせたりすることはありません（settle-allセマンティクス）。
//
// 価格がゼロまたは欠落しているアセットは「有効な価格なし」として更新対象外となり、
// 最後に取得できた正常な価格を保持します。
func (u *AssetUsecase) RefreshAllPrices(ctx context.Context) (*RefreshResult, error) {
	assets, err := u.assets.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return &RefreshResult{Assets: []entity.Asset{}}, nil
	}

	// 重複を除いたCoinGecko IDを収集し、1回のリクエストで全価格を取得
	seen := make(map[string]struct{}, len(assets))
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		if _, ok := seen[a.CoingeckoID]; ok {
			continue
		}
		seen[a.CoingeckoID] = struct{}{}
		ids = append(ids, a.CoingeckoID)
	}

	quotes, err := u.prices.FetchPrices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		stats RefreshStats
	)
	for _, a := range assets {
		price, ok := quotes[a.CoingeckoID]
		if !ok || price <= 0 {
			// 有効な価格なし。更新せず、成功にも失敗にも数えない。
			continue
		}
		wg.Add(1)
		go func(id uint, price float64) {
			defer wg.Done()
			err := u.assets.UpdatePrice(ctx, id, price)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Error("failed to update asset price", "asset_id", id, "error", err)
				stats.Failed++
				return
			}
			stats.Successful++
		}(a.ID, price)
	}
	wg.Wait()
	stats.Total = stats.Successful + stats.Failed

	refreshed, err := u.assets.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{Assets: refreshed, Stats: stats}, nil
}
