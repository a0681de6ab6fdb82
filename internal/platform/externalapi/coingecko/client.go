package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"crypto_backend/internal/feature/marketdata/domain/entity"
	"crypto_backend/internal/feature/marketdata/usecase"
	"crypto_backend/internal/platform/externalapi/coingecko/dto"
	"crypto_backend/internal/shared/ratelimiter"
)

// Client はCoinGecko外部APIを呼び出すUpstream実装です。
// クエリ文字列は一切加工せず、そのまま上流へ転送します。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ClientがUpstreamを実装していることをコンパイル時に検証します。
var _ usecase.Upstream = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiterはnil可で、nilの場合はペーシングを行いません。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// Fetch は上流のpathへGETリクエストを1回発行し、ステータスコードと
// レスポンスボディをそのまま返します。HTTPエラーステータスはここでは
// エラーにせず、呼び出し元のエラー分類に委ねます。
func (c *Client) Fetch(ctx context.Context, path, rawQuery string) (entity.UpstreamResponse, error) {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	u := c.cfg.BaseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.UpstreamResponse{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return entity.UpstreamResponse{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return entity.UpstreamResponse{}, err
	}

	return entity.UpstreamResponse{StatusCode: res.StatusCode, Body: body}, nil
}

// ParseMarkets は /coins/markets のレスポンスボディを型付きでデコードします。
// アナリティクス機能がsparkline系列を取り出すために使います。
func ParseMarkets(body []byte) ([]dto.Market, error) {
	var markets []dto.Market
	if err := json.Unmarshal(body, &markets); err != nil {
		return nil, fmt.Errorf("decode markets response: %w", err)
	}
	return markets, nil
}
