package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"crypto_backend/internal/app/router"
	analyticsadapters "crypto_backend/internal/feature/analytics/adapters"
	analyticshandler "crypto_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "crypto_backend/internal/feature/analytics/usecase"
	liquidityhandler "crypto_backend/internal/feature/liquidity/transport/handler"
	liquidityusecase "crypto_backend/internal/feature/liquidity/usecase"
	markethandler "crypto_backend/internal/feature/marketdata/transport/handler"
	marketusecase "crypto_backend/internal/feature/marketdata/usecase"
	predictionadapters "crypto_backend/internal/feature/prediction/adapters"
	predictionhandler "crypto_backend/internal/feature/prediction/transport/handler"
	predictionusecase "crypto_backend/internal/feature/prediction/usecase"
	"crypto_backend/internal/platform/cache"
	"crypto_backend/internal/platform/externalapi/coingecko"
	platformhttp "crypto_backend/internal/platform/http"
	infraredis "crypto_backend/internal/platform/redis"
	"crypto_backend/internal/shared/ratelimiter"

	moodhandler "crypto_backend/internal/feature/mood/transport/handler"
	moodusecase "crypto_backend/internal/feature/mood/usecase"
)

func main() {
	// .envがあれば読み込む（本番では環境変数を直接設定）
	_ = godotenv.Load()

	// キャッシュTTL
	ttl := cache.DefaultTTL
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	// キャッシュストア: Redisが利用可能ならRedis、なければインメモリ
	var store marketusecase.Store
	if rdb, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to in-memory cache.")
		store = cache.NewMemoryStore(ttl)
	} else if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
		store = cache.NewRedisStore(rdb, ttl, "proxy")
	} else {
		store = cache.NewMemoryStore(ttl)
	}

	// 上流CoinGeckoクライアント（レートリミット付き）
	cgCfg := coingecko.LoadConfig()
	limiter := ratelimiter.NewRateLimiter(cgCfg.RateLimitPerMin, time.Minute)
	upstream := coingecko.NewClient(cgCfg, platformhttp.NewHTTPClient(cgCfg.Timeout), limiter)

	// Usecase
	proxyUC := marketusecase.NewProxyUsecase(store, upstream)
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(analyticsadapters.NewMarketSource(proxyUC))
	liquidityUC := liquidityusecase.NewLiquidityUsecase(nil, nil)
	moodUC := moodusecase.NewMoodUsecase()

	// 予測バックエンド（未設定の場合は/predictがエラーを返す）
	predCfg := predictionadapters.LoadConfig()
	if predCfg.BaseURL == "" {
		log.Println("[WARN] PREDICTION_BASE_URL is not set. /predict will return configuration errors.")
	}
	backend := predictionadapters.NewBackendClient(predCfg, platformhttp.NewHTTPClient(predCfg.Timeout))
	predictionUC := predictionusecase.NewPredictionUsecase(backend)

	// Handler
	marketH := markethandler.NewMarketHandler(proxyUC)
	predictionH := predictionhandler.NewPredictionHandler(predictionUC)
	analyticsH := analyticshandler.NewAnalyticsHandler(analyticsUC)
	liquidityH := liquidityhandler.NewLiquidityHandler(liquidityUC)
	moodH := moodhandler.NewMoodHandler(moodUC)

	// ルータ生成
	router := router.NewRouter(marketH, predictionH, analyticsH, liquidityH, moodH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
