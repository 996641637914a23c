package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Varsha6677/Crypto-Assignment/internal/feature/assets/usecase"
	"github.com/Varsha6677/Crypto-Assignment/internal/platform/externalapi/coingecko/dto"
)

// vsCurrency は価格の取得に使用する法定通貨単位です。
const vsCurrency = "usd"

// CoinGeckoMarket はCoinGecko外部APIから暗号資産の価格を取得するPriceRepository実装です。
type CoinGeckoMarket struct {
	cfg    Config
	client *http.Client
}

// CoinGeckoMarketがPriceRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PriceRepository = (*CoinGeckoMarket)(nil)

// NewCoinGeckoMarket は指定された設定とHTTPクライアントでCoinGeckoMarketの新しいインスタンスを生成します。
func NewCoinGeckoMarket(cfg Config, client *http.Client) *CoinGeckoMarket {
	return &CoinGeckoMarket{cfg: cfg, client: client}
}

// FetchPrices は指定されたCoinGecko IDの現在価格をUSD建てで取得します。
// アセット数に関わらず1回のバッチリクエストで全IDを照会します。
// 上流が認識しないIDは結果のマップに含まれません（エラーにはなりません）。
// ネットワーク障害または非成功レスポンスの場合のみエラーを返します。
func (m *CoinGeckoMarket) FetchPrices(ctx context.Context, ids []string) (map[string]float64, error) {
	if len(ids) == 0 {
		return map[string]float64{}, nil
	}

	q := url.Values{}
	// IDをカンマ区切りで連結して1リクエストにまとめる
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", vsCurrency)

	u := fmt.Sprintf("%s/simple/price?%s", m.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if m.cfg.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", m.cfg.APIKey)
	}

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("coingecko http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.SimplePriceResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(body))
	for id, quote := range body {
		prices[id] = quote.USD
	}
	return prices, nil
}
