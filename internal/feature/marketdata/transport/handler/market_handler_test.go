package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crypto_backend/internal/feature/marketdata/transport/handler"
	"crypto_backend/internal/feature/marketdata/usecase"
)

// mockProxyUsecase はProxyUsecaseインターフェースのモック実装です。
type mockProxyUsecase struct {
	FetchFunc func(ctx context.Context, key, path, rawQuery string) ([]byte, error)
}

func (m *mockProxyUsecase) Fetch(ctx context.Context, key, path, rawQuery string) ([]byte, error) {
	return m.FetchFunc(ctx, key, path, rawQuery)
}

func setupMarketRouter(uc handler.ProxyUsecase) *gin.Engine {
	h := handler.NewMarketHandler(uc)
	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/coins/markets", h.GetMarkets)
		api.GET("/coins/:id", h.GetCoin)
		api.GET("/coins/:id/market_chart", h.GetMarketChart)
	}
	return router
}

// TestMarketHandler_Proxy はプロキシルートのHTTPリクエスト/レスポンス処理をテストします。
func TestMarketHandler_Proxy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockFetch      func(ctx context.Context, key, path, rawQuery string) ([]byte, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: markets list with query passthrough",
			url:  "/api/coins/markets?vs_currency=usd&per_page=2",
			mockFetch: func(ctx context.Context, key, path, rawQuery string) ([]byte, error) {
				// キャッシュキーは受信パス+クエリそのまま
				assert.Equal(t, "/api/coins/markets?vs_currency=usd&per_page=2", key)
				assert.Equal(t, "/coins/markets", path)
				assert.Equal(t, "vs_currency=usd&per_page=2", rawQuery)
				return []byte(`[{"id":"bitcoin"},{"id":"ethereum"}]`), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":"bitcoin"},{"id":"ethereum"}]`,
		},
		{
			name: "success: single coin path param forwarded",
			url:  "/api/coins/bitcoin",
			mockFetch: func(ctx context.Context, key, path, rawQuery string) ([]byte, error) {
				assert.Equal(t, "/coins/bitcoin", path)
				return []byte(`{"id":"bitcoin","symbol":"btc"}`), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":"bitcoin","symbol":"btc"}`,
		},
		{
			name: "success: market chart path",
			url:  "/api/coins/bitcoin/market_chart?vs_currency=usd&days=30",
			mockFetch: func(ctx context.Context, key, path, rawQuery string) ([]byte, error) {
				assert.Equal(t, "/coins/bitcoin/market_chart", path)
				assert.Equal(t, "vs_currency=usd&days=30", rawQuery)
				return []byte(`{"prices":[[1700000000000,37000.5]]}`), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"prices":[[1700000000000,37000.5]]}`,
		},
		{
			name: "error: rate limited maps to 429",
			url:  "/api/coins/markets?vs_currency=usd",
			mockFetch: func(ctx context.Context, key, path, rawQuery string) ([]byte, error) {
				return nil, usecase.ErrRateLimited
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"Rate limited by CoinGecko. Please try again later."}`,
		},
		{
			name: "error: upstream status and body passed through verbatim",
			url:  "/api/coins/unknown-coin",
			mockFetch: func(ctx context.Context, key, path, rawQuery string) ([]byte, error) {
				return nil, &usecase.StatusError{
					StatusCode: http.StatusNotFound,
					Body:       []byte(`{"error":"coin not found"}`),
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"coin not found"}`,
		},
		{
			name: "error: unreachable upstream maps to 500",
			url:  "/api/coins/markets?vs_currency=usd",
			mockFetch: func(ctx context.Context, key, path, rawQuery string) ([]byte, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Error fetching data from CoinGecko"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockProxyUsecase{FetchFunc: tt.mockFetch}
			router := setupMarketRouter(mockUC)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
