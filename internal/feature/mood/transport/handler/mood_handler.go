// Package handler はmoodフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/api"
	"crypto_backend/internal/feature/mood/domain/entity"
	"crypto_backend/internal/feature/mood/usecase"
)

// MoodUsecase はセンチメント系列のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MoodUsecase interface {
	Series(timeframe string) ([]entity.MoodPoint, error)
}

// MoodHandler は /api/analytics/mood のHTTPリクエストを処理します。
type MoodHandler struct {
	uc MoodUsecase
}

// NewMoodHandler は指定されたusecaseでMoodHandlerの新しいインスタンスを生成します。
func NewMoodHandler(uc MoodUsecase) *MoodHandler {
	return &MoodHandler{uc: uc}
}

// GetMood は指定時間枠のセンチメント系列と最新値を返します。
//
// エンドポイント例:
// GET /api/analytics/mood?timeframe=7d
func (h *MoodHandler) GetMood(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", usecase.Timeframe24H)

	series, err := h.uc.Series(timeframe)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownTimeframe) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "timeframe must be one of 24h, 7d, 30d"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error building mood series"})
		return
	}

	out := api.MoodResponse{
		Timeframe: timeframe,
		Series:    make([]api.MoodPoint, 0, len(series)),
	}
	for _, p := range series {
		out.Series = append(out.Series, api.MoodPoint{
			Time:    p.Time,
			Fear:    p.Fear,
			Greed:   p.Greed,
			Neutral: p.Neutral,
		})
	}
	if len(out.Series) > 0 {
		out.Latest = out.Series[len(out.Series)-1]
	}

	c.JSON(http.StatusOK, out)
}
