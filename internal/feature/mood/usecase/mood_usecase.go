// Package usecase serves the market mood (fear/greed) series.
package usecase

import (
	"errors"

	"crypto_backend/internal/feature/mood/domain/entity"
)

// Timeframe labels accepted by Series.
const (
	Timeframe24H = "24h"
	Timeframe7D  = "7d"
	Timeframe30D = "30d"
)

// ErrUnknownTimeframe is returned for a timeframe other than 24h/7d/30d.
var ErrUnknownTimeframe = errors.New("unknown timeframe")

// baseSeries は24時間分のセンチメント指標です。元のダッシュボードと同じ
// 固定の6点系列で、長い期間はこの系列に倍率を掛けて導出します。
var baseSeries = []entity.MoodPoint{
	{Time: "00:00", Fear: 65, Greed: 35, Neutral: 50},
	{Time: "04:00", Fear: 55, Greed: 45, Neutral: 48},
	{Time: "08:00", Fear: 45, Greed: 55, Neutral: 52},
	{Time: "12:00", Fear: 35, Greed: 65, Neutral: 55},
	{Time: "16:00", Fear: 48, Greed: 52, Neutral: 49},
	{Time: "20:00", Fear: 58, Greed: 42, Neutral: 51},
}

// moodUsecase は時間枠ごとのセンチメント系列を導出します。純関数で
// 共有状態を持たないため、並行呼び出しに対して安全です。
type moodUsecase struct{}

// NewMoodUsecase はmoodUsecaseの新しいインスタンスを生成します。
func NewMoodUsecase() *moodUsecase {
	return &moodUsecase{}
}

// Series は指定時間枠のセンチメント系列を返します。
// 7dは恐怖×0.9・強欲×1.1・中立×1.05、30dは恐怖×0.7・強欲×1.3・中立×0.95。
func (mu *moodUsecase) Series(timeframe string) ([]entity.MoodPoint, error) {
	var fear, greed, neutral float64
	switch timeframe {
	case Timeframe24H, "":
		fear, greed, neutral = 1, 1, 1
	case Timeframe7D:
		fear, greed, neutral = 0.9, 1.1, 1.05
	case Timeframe30D:
		fear, greed, neutral = 0.7, 1.3, 0.95
	default:
		return nil, ErrUnknownTimeframe
	}

	series := make([]entity.MoodPoint, 0, len(baseSeries))
	for _, p := range baseSeries {
		series = append(series, entity.MoodPoint{
			Time:    p.Time,
			Fear:    p.Fear * fear,
			Greed:   p.Greed * greed,
			Neutral: p.Neutral * neutral,
		})
	}
	return series, nil
}
