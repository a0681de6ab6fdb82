// Package adapters connects the analytics feature to the cached market data.
package adapters

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"crypto_backend/internal/feature/analytics/usecase"
	"crypto_backend/internal/platform/externalapi/coingecko"
)

// Fetcher はキャッシュスルー型のフェッチを抽象化します。marketdataの
// proxyUsecaseをそのまま差し込むことで、プロキシルートとキャッシュを共有します。
type Fetcher interface {
	Fetch(ctx context.Context, key, path, rawQuery string) ([]byte, error)
}

// MarketSource は /coins/markets をsparkline付きで取得し、
// シンボル→価格系列のマップへ変換するMarketSource実装です。
type MarketSource struct {
	fetcher Fetcher
}

// MarketSourceがusecase.MarketSourceを実装していることをコンパイル時に検証します。
var _ usecase.MarketSource = (*MarketSource)(nil)

// NewMarketSource は指定されたfetcherでMarketSourceの新しいインスタンスを生成します。
func NewMarketSource(fetcher Fetcher) *MarketSource {
	return &MarketSource{fetcher: fetcher}
}

// SparklineSeries は時価総額上位perPage銘柄の7日間価格系列を返します。
// sparklineを持たない銘柄は黙って除外します（新規上場直後など）。
func (s *MarketSource) SparklineSeries(ctx context.Context, currency string, perPage int) (map[string][]float64, error) {
	q := url.Values{}
	q.Set("vs_currency", currency)
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", "1")
	q.Set("sparkline", "true")
	rawQuery := q.Encode()

	// キャッシュキーはプロキシルートと同じ形式（パス+クエリ）
	body, err := s.fetcher.Fetch(ctx, "/api/coins/markets?"+rawQuery, "/coins/markets", rawQuery)
	if err != nil {
		return nil, err
	}

	markets, err := coingecko.ParseMarkets(body)
	if err != nil {
		return nil, fmt.Errorf("parse markets: %w", err)
	}

	priceMap := make(map[string][]float64, len(markets))
	for _, m := range markets {
		if m.SparklineIn7D == nil || len(m.SparklineIn7D.Price) == 0 {
			continue
		}
		priceMap[strings.ToUpper(m.Symbol)] = m.SparklineIn7D.Price
	}
	return priceMap, nil
}
