package usecase

import (
	"context"
	"fmt"

	"crypto_backend/internal/feature/analytics/domain/entity"
)

const (
	// DefaultCurrency はsparkline取得時のデフォルト通貨です。
	DefaultCurrency = "usd"
	// DefaultPerPage は分析対象とする時価総額上位の銘柄数です。
	DefaultPerPage = 10
	// MaxPerPage は1リクエストで分析できる銘柄数の上限です。
	// 行列はN²で膨らむため、数十銘柄で十分です。
	MaxPerPage = 50
)

// MarketSource は時価総額上位銘柄の7日間sparkline系列を取得するレイヤーを
// 抽象化します。Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketSource interface {
	// SparklineSeries は大文字シンボル→価格系列のマップを返します。
	SparklineSeries(ctx context.Context, currency string, perPage int) (map[string][]float64, error)
}

// analyticsUsecase は相関・ボラティリティ分析のユースケースを定義します。
// 統計エンジンは純関数なので、リクエストごとに新しく計算します。
type analyticsUsecase struct {
	source MarketSource
}

// NewAnalyticsUsecase はanalyticsUsecaseの新しいインスタンスを生成します。
func NewAnalyticsUsecase(source MarketSource) *analyticsUsecase {
	return &analyticsUsecase{source: source}
}

// CorrelationAnalysis は指定通貨の上位perPage銘柄について相関行列と
// ボラティリティ指標を計算します。
func (au *analyticsUsecase) CorrelationAnalysis(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	priceMap, err := au.source.SparklineSeries(ctx, currency, perPage)
	if err != nil {
		return nil, fmt.Errorf("fetch sparkline series: %w", err)
	}

	return &entity.CorrelationAnalysis{
		Correlation: BuildCorrelationMatrix(priceMap),
		Volatility:  VolatilityMetrics(priceMap),
	}, nil
}
