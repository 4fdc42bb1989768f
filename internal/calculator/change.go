package calculator

import (
	"fmt"
	"math"

	"StockForecast/internal/model"
)

// ChangePercent returns the percentage move from previous to current.
// A zero move counts as up.
func ChangePercent(previous, current float64) (model.ChangeMetric, error) {
	if previous <= 0 || math.IsNaN(previous) || math.IsInf(previous, 0) {
		return model.ChangeMetric{}, fmt.Errorf("previous price %v: %w", previous, model.ErrInvalidPrice)
	}
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return model.ChangeMetric{}, fmt.Errorf("current price %v: %w", current, model.ErrInvalidPrice)
	}

	pct := (current - previous) / previous * 100
	dir := model.DirectionUp
	if pct < 0 {
		dir = model.DirectionDown
	}
	return model.ChangeMetric{Percent: pct, Direction: dir}, nil
}

// DeriveChanges computes the step-over-step change of a forecast. The first
// step is measured against lastClose.
func DeriveChanges(lastClose float64, prices []float64) ([]model.ChangeMetric, error) {
	changes := make([]model.ChangeMetric, len(prices))
	prev := lastClose
	for i, p := range prices {
		c, err := ChangePercent(prev, p)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		changes[i] = c
		prev = p
	}
	return changes, nil
}
