package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analyticshandler "crypto_backend/internal/feature/analytics/transport/handler"
	liquidityhandler "crypto_backend/internal/feature/liquidity/transport/handler"
	markethandler "crypto_backend/internal/feature/marketdata/transport/handler"
	moodhandler "crypto_backend/internal/feature/mood/transport/handler"
	predictionhandler "crypto_backend/internal/feature/prediction/transport/handler"
	"crypto_backend/internal/platform/http/handler"
)

func NewRouter(market *markethandler.MarketHandler, prediction *predictionhandler.PredictionHandler,
	analytics *analyticshandler.AnalyticsHandler, liquidity *liquidityhandler.LiquidityHandler,
	mood *moodhandler.MoodHandler) *gin.Engine {
	r := gin.Default()
	// ダッシュボードはブラウザから直接叩くためCORSのデフォルト設定を有効
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// CoinGeckoプロキシ（キャッシュあり）
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/coins/markets", market.GetMarkets)
		apiGroup.GET("/coins/:id", market.GetCoin)
		apiGroup.GET("/coins/:id/market_chart", market.GetMarketChart)

		// 分析エンドポイント（結果はキャッシュしない）
		apiGroup.GET("/analytics/correlation", analytics.GetCorrelation)
		apiGroup.GET("/analytics/liquidity", liquidity.GetFlows)
		apiGroup.GET("/analytics/mood", mood.GetMood)
	}

	// 予測バックエンドへの転送（キャッシュなし・長タイムアウト）
	r.GET("/predict/:coin_id", prediction.Predict)

	return r
}
