// Package handler はanalyticsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/api"
	"crypto_backend/internal/feature/analytics/domain/entity"
	marketdata "crypto_backend/internal/feature/marketdata/usecase"
)

// AnalyticsUsecase は相関・ボラティリティ分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalyticsUsecase interface {
	CorrelationAnalysis(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error)
}

// AnalyticsHandler は分析エンドポイントのHTTPリクエストを処理します。
type AnalyticsHandler struct {
	uc AnalyticsUsecase
}

// NewAnalyticsHandler は指定されたusecaseでAnalyticsHandlerの新しいインスタンスを生成します。
func NewAnalyticsHandler(uc AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetCorrelation は上位銘柄の相関行列とボラティリティ分析を返します。
//
// エンドポイント例:
// GET /api/analytics/correlation?vs_currency=usd&per_page=10
func (h *AnalyticsHandler) GetCorrelation(c *gin.Context) {
	currency := c.DefaultQuery("vs_currency", "usd")
	perPageStr := c.DefaultQuery("per_page", "10")
	// 不正な値は0になり、usecase側でデフォルトに丸められる
	perPage, _ := strconv.Atoi(perPageStr)

	analysis, err := h.uc.CorrelationAnalysis(c.Request.Context(), currency, perPage)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	out := api.CorrelationResponse{
		Assets:     analysis.Correlation.Assets,
		Matrix:     analysis.Correlation.Matrix,
		Volatility: make([]api.VolatilityEntry, 0, len(analysis.Volatility)),
	}
	for _, m := range analysis.Volatility {
		// 元のダッシュボードに合わせてパーセント表示・小数点以下2桁
		out.Volatility = append(out.Volatility, api.VolatilityEntry{
			Asset:           m.Asset,
			Volatility:      round2(m.DailyVol * 100),
			AnnualizedVol:   round2(m.AnnualizedVol * 100),
			MaxDrawdown:     round2(m.MaxDrawdown * 100),
			ValueAtRisk:     round2(m.ValueAtRisk * 100),
			VolatilityRatio: round2(m.VolatilityRatio),
			RiskCategory:    string(m.RiskCategory),
		})
	}

	c.JSON(http.StatusOK, out)
}

// writeAnalyticsError は基礎データ取得の失敗をHTTPレスポンスへ変換します。
func writeAnalyticsError(c *gin.Context, err error) {
	var statusErr *marketdata.StatusError
	switch {
	case errors.Is(err, marketdata.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Rate limited by CoinGecko. Please try again later."})
	case errors.As(err, &statusErr):
		c.JSON(statusErr.StatusCode, api.ErrorResponse{Error: "Failed to fetch correlation data. Please try again later."})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch correlation data. Please try again later."})
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
