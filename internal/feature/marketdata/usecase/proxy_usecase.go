package usecase

import (
	"context"
	"fmt"
	"net/http"

	"crypto_backend/internal/feature/marketdata/domain/entity"
)

// Store はTTL付きキャッシュの読み書きレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Store interface {
	// Get は生存中のエントリを返します。期限切れ・未登録はミス扱いです。
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set は新しい有効期限でエントリを上書き保存します。
	Set(ctx context.Context, key string, body []byte)
}

// Upstream は上流市場データAPIへの1回のGET呼び出しを抽象化します。
type Upstream interface {
	Fetch(ctx context.Context, path, rawQuery string) (entity.UpstreamResponse, error)
}

// proxyUsecase はキャッシュスルー型のフェッチを実装します。
//
// 同一キーへの同時ミスは合流させず、それぞれが上流を呼びます（後勝ち）。
// エラーレスポンスは決してキャッシュしません。
type proxyUsecase struct {
	store    Store
	upstream Upstream
}

// NewProxyUsecase はproxyUsecaseの新しいインスタンスを生成します。
func NewProxyUsecase(store Store, upstream Upstream) *proxyUsecase {
	return &proxyUsecase{store: store, upstream: upstream}
}

// Fetch はkeyでキャッシュを確認し、ミス時のみ上流のpathへ問い合わせます。
// 成功した2xxボディだけをキャッシュに保存します。
func (pu *proxyUsecase) Fetch(ctx context.Context, key, path, rawQuery string) ([]byte, error) {
	if body, ok := pu.store.Get(ctx, key); ok {
		return body, nil
	}

	res, err := pu.upstream.Fetch(ctx, path, rawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}

	if res.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if !res.OK() {
		return nil, &StatusError{StatusCode: res.StatusCode, Body: res.Body}
	}

	pu.store.Set(ctx, key, res.Body)
	return res.Body, nil
}
