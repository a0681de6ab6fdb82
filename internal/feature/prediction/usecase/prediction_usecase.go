package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Backend は予測バックエンドへの1回のGET呼び出しを抽象化します。
// 実装はステータスコードとボディをそのまま返し、分類はusecaseが行います。
type Backend interface {
	Predict(ctx context.Context, coinID string) (statusCode int, body []byte, err error)
}

// predictionUsecase は予測リクエストの転送とエラー分類を実装します。
// モデル推論は分単位かかるため、このルートだけ長いタイムアウトを使います。
// レスポンスはキャッシュしません。
type predictionUsecase struct {
	backend Backend
}

// NewPredictionUsecase はpredictionUsecaseの新しいインスタンスを生成します。
func NewPredictionUsecase(backend Backend) *predictionUsecase {
	return &predictionUsecase{backend: backend}
}

// Predict は指定コインの予測をバックエンドへ問い合わせ、ボディを返します。
func (pu *predictionUsecase) Predict(ctx context.Context, coinID string) ([]byte, error) {
	status, body, err := pu.backend.Predict(ctx, coinID)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return nil, ErrNotConfigured
		}
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if status < 200 || status >= 300 {
		return nil, &StatusError{StatusCode: status, Body: body}
	}
	return body, nil
}
