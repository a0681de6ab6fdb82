// Package handler はpredictionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/api"
	"crypto_backend/internal/feature/prediction/usecase"
)

// PredictionUsecase は予測転送のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PredictionUsecase interface {
	Predict(ctx context.Context, coinID string) ([]byte, error)
}

// PredictionHandler は /predict/:coin_id のHTTPリクエストを処理します。
type PredictionHandler struct {
	uc PredictionUsecase
}

// NewPredictionHandler は指定されたusecaseでPredictionHandlerの新しいインスタンスを生成します。
func NewPredictionHandler(uc PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// Predict は予測バックエンドの結果をそのまま返します。キャッシュしません。
//
// エンドポイント例:
// GET /predict/bitcoin
func (h *PredictionHandler) Predict(c *gin.Context) {
	body, err := h.uc.Predict(c.Request.Context(), c.Param("coin_id"))
	if err != nil {
		writePredictionError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// writePredictionError はusecaseのエラー分類をHTTPレスポンスへ変換します。
func writePredictionError(c *gin.Context, err error) {
	var statusErr *usecase.StatusError
	switch {
	case errors.Is(err, usecase.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Prediction backend is not configured"})
	case errors.Is(err, usecase.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, api.ErrorResponse{Error: "Prediction backend timed out"})
	case errors.As(err, &statusErr):
		// バックエンドのステータスとボディをそのまま透過
		c.Data(statusErr.StatusCode, "application/json", statusErr.Body)
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error fetching prediction"})
	}
}
