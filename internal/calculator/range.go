package calculator

import (
	"errors"
	"math"

	"StockForecast/internal/model"
)

// Window lengths in calendar days. The synthetic series has no trading calendar.
const (
	Window52w = 365
	Window30d = 30
)

// CalculateRange returns the highest High and lowest Low over the newest days bars.
func CalculateRange(bars []model.DailyBar, days int) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no daily bars provided")
	}
	if days <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	start := max(len(bars)-days, 0)

	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars[start:] {
		high = max(high, b.High)
		low = min(low, b.Low)
	}
	return high, low, nil
}

// Calculate52WeekRange is CalculateRange over Window52w days.
func Calculate52WeekRange(bars []model.DailyBar) (high, low float64, err error) {
	return CalculateRange(bars, Window52w)
}

// Calculate30DayRange is CalculateRange over Window30d days.
func Calculate30DayRange(bars []model.DailyBar) (high, low float64, err error) {
	return CalculateRange(bars, Window30d)
}

// CalculatePosition returns where current sits within [low, high], clamped to 0.0~1.0.
func CalculatePosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	return min(max(pos, 0), 1), nil
}
