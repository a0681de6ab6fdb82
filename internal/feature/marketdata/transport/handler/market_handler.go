// Package handler はmarketdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/api"
	"crypto_backend/internal/feature/marketdata/usecase"
)

// ProxyUsecase はキャッシュスルー型フェッチのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ProxyUsecase interface {
	Fetch(ctx context.Context, key, path, rawQuery string) ([]byte, error)
}

// MarketHandler はCoinGeckoプロキシルートのHTTPリクエストを処理します。
type MarketHandler struct {
	uc ProxyUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc ProxyUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetMarkets はコイン一覧を返します。クエリパラメータはそのまま上流へ転送されます。
//
// エンドポイント例:
// GET /api/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=100&page=1&sparkline=false
func (h *MarketHandler) GetMarkets(c *gin.Context) {
	h.proxy(c, "/coins/markets")
}

// GetCoin は単一コインの詳細ドキュメントを返します。
//
// エンドポイント例:
// GET /api/coins/bitcoin
func (h *MarketHandler) GetCoin(c *gin.Context) {
	h.proxy(c, "/coins/"+url.PathEscape(c.Param("id")))
}

// GetMarketChart は指定コインの過去価格系列を返します。
//
// エンドポイント例:
// GET /api/coins/bitcoin/market_chart?vs_currency=usd&days=365
func (h *MarketHandler) GetMarketChart(c *gin.Context) {
	h.proxy(c, "/coins/"+url.PathEscape(c.Param("id"))+"/market_chart")
}

// proxy はキャッシュキー（受信したパス+クエリそのまま）を組み立てて
// ユースケースを呼び、エラー分類に応じたレスポンスを書き出します。
func (h *MarketHandler) proxy(c *gin.Context, upstreamPath string) {
	key := c.Request.URL.RequestURI()

	body, err := h.uc.Fetch(c.Request.Context(), key, upstreamPath, c.Request.URL.RawQuery)
	if err != nil {
		writeProxyError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// writeProxyError はusecaseのエラー分類をHTTPレスポンスへ変換します。
func writeProxyError(c *gin.Context, err error) {
	var statusErr *usecase.StatusError
	switch {
	case errors.Is(err, usecase.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Rate limited by CoinGecko. Please try again later."})
	case errors.As(err, &statusErr):
		// 上流のステータスとボディをそのまま透過
		c.Data(statusErr.StatusCode, "application/json", statusErr.Body)
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error fetching data from CoinGecko"})
	}
}
