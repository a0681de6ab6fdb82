package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crypto_backend/internal/feature/analytics/domain/entity"
	"crypto_backend/internal/feature/analytics/transport/handler"
	marketdata "crypto_backend/internal/feature/marketdata/usecase"
)

// mockAnalyticsUsecase はAnalyticsUsecaseインターフェースのモック実装です。
type mockAnalyticsUsecase struct {
	CorrelationAnalysisFunc func(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error)
}

func (m *mockAnalyticsUsecase) CorrelationAnalysis(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error) {
	return m.CorrelationAnalysisFunc(ctx, currency, perPage)
}

// TestAnalyticsHandler_GetCorrelation はGetCorrelationのHTTPリクエスト/レスポンス処理をテストします。
func TestAnalyticsHandler_GetCorrelation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	analysis := &entity.CorrelationAnalysis{
		Correlation: entity.CorrelationMatrix{
			Assets: []string{"BTC", "ETH"},
			Matrix: [][]float64{{1, 0.85}, {0.85, 1}},
		},
		Volatility: []entity.VolatilityMetric{
			{
				Asset:           "ETH",
				DailyVol:        0.052345, // パーセント化+丸めで5.23になる
				AnnualizedVol:   0.999999,
				MaxDrawdown:     0.25,
				ValueAtRisk:     0.081,
				VolatilityRatio: 1.666,
				RiskCategory:    entity.RiskHigh,
			},
			{
				Asset:           "BTC",
				DailyVol:        0.0314,
				AnnualizedVol:   0.6,
				MaxDrawdown:     0.181818,
				ValueAtRisk:     0.05,
				VolatilityRatio: 1,
				RiskCategory:    entity.RiskLow,
			},
		},
	}

	tests := []struct {
		name           string
		url            string
		mockAnalysis   func(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: percent formatting with two decimals",
			url:  "/api/analytics/correlation?vs_currency=eur&per_page=25",
			mockAnalysis: func(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error) {
				assert.Equal(t, "eur", currency)
				assert.Equal(t, 25, perPage)
				return analysis, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"assets": ["BTC","ETH"],
				"matrix": [[1,0.85],[0.85,1]],
				"volatility": [
					{"asset":"ETH","volatility":5.23,"annualizedVol":100,"maxDrawdown":25,"valueAtRisk":8.1,"volatilityRatio":1.67,"riskCategory":"High"},
					{"asset":"BTC","volatility":3.14,"annualizedVol":60,"maxDrawdown":18.18,"valueAtRisk":5,"volatilityRatio":1,"riskCategory":"Low"}
				]
			}`,
		},
		{
			name: "success: default query parameters",
			url:  "/api/analytics/correlation",
			mockAnalysis: func(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error) {
				assert.Equal(t, "usd", currency)
				assert.Equal(t, 10, perPage)
				return &entity.CorrelationAnalysis{
					Correlation: entity.CorrelationMatrix{Assets: []string{}, Matrix: [][]float64{}},
					Volatility:  []entity.VolatilityMetric{},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"assets":[],"matrix":[],"volatility":[]}`,
		},
		{
			name: "error: rate limited maps to 429",
			url:  "/api/analytics/correlation",
			mockAnalysis: func(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error) {
				return nil, marketdata.ErrRateLimited
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"Rate limited by CoinGecko. Please try again later."}`,
		},
		{
			name: "error: upstream status is kept with analytics message",
			url:  "/api/analytics/correlation",
			mockAnalysis: func(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error) {
				return nil, &marketdata.StatusError{StatusCode: http.StatusBadGateway, Body: []byte(`{"error":"upstream"}`)}
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Failed to fetch correlation data. Please try again later."}`,
		},
		{
			name: "error: unreachable upstream maps to 500",
			url:  "/api/analytics/correlation",
			mockAnalysis: func(ctx context.Context, currency string, perPage int) (*entity.CorrelationAnalysis, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to fetch correlation data. Please try again later."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAnalyticsUsecase{CorrelationAnalysisFunc: tt.mockAnalysis}
			h := handler.NewAnalyticsHandler(mockUC)

			router := gin.New()
			router.GET("/api/analytics/correlation", h.GetCorrelation)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
