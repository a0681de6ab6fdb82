// Package handler はliquidityフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/api"
	"crypto_backend/internal/feature/liquidity/domain/entity"
)

// LiquidityUsecase は資金フロー生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type LiquidityUsecase interface {
	FlowSeries(days int) []entity.FlowPoint
}

// LiquidityHandler は /api/analytics/liquidity のHTTPリクエストを処理します。
type LiquidityHandler struct {
	uc LiquidityUsecase
}

// NewLiquidityHandler は指定されたusecaseでLiquidityHandlerの新しいインスタンスを生成します。
func NewLiquidityHandler(uc LiquidityUsecase) *LiquidityHandler {
	return &LiquidityHandler{uc: uc}
}

// GetFlows は直近days日分の資金フロー系列を返します。
//
// エンドポイント例:
// GET /api/analytics/liquidity?days=7
func (h *LiquidityHandler) GetFlows(c *gin.Context) {
	daysStr := c.DefaultQuery("days", "7")
	// 不正な値は0になり、usecase側でデフォルトに丸められる
	days, _ := strconv.Atoi(daysStr)

	flows := h.uc.FlowSeries(days)

	out := make([]api.LiquidityPoint, 0, len(flows))
	for _, f := range flows {
		out = append(out, api.LiquidityPoint{
			Date:    f.Date,
			Inflow:  f.Inflow,
			Outflow: f.Outflow,
			NetFlow: f.NetFlow,
		})
	}
	c.JSON(http.StatusOK, out)
}
