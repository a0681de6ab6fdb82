package adapters

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"crypto_backend/internal/feature/prediction/usecase"
)

// BackendClient は予測バックエンドを呼び出すBackend実装です。
type BackendClient struct {
	cfg    Config
	client *http.Client
}

// BackendClientがBackendを実装していることをコンパイル時に検証します。
var _ usecase.Backend = (*BackendClient)(nil)

// NewBackendClient は指定された設定とHTTPクライアントでBackendClientの
// 新しいインスタンスを生成します。clientのタイムアウトはcfg.Timeoutに
// 合わせて構築してください。
func NewBackendClient(cfg Config, client *http.Client) *BackendClient {
	return &BackendClient{cfg: cfg, client: client}
}

// Predict は {base}/predict/{coinID} へGETリクエストを発行します。
// BaseURL未設定の場合はネットワーク呼び出しを行わずにErrNotConfiguredを返します。
func (b *BackendClient) Predict(ctx context.Context, coinID string) (int, []byte, error) {
	if b.cfg.BaseURL == "" {
		return 0, nil, usecase.ErrNotConfigured
	}

	u := b.cfg.BaseURL + "/predict/" + url.PathEscape(coinID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := b.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, err
	}
	return res.StatusCode, body, nil
}
