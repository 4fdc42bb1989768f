package calculator

import (
	"time"

	"StockForecast/internal/model"
)

// AlignDates returns horizon consecutive calendar days starting the day after today.
func AlignDates(horizon int, today time.Time) []time.Time {
	if horizon <= 0 {
		return nil
	}
	day := model.Day(today)
	dates := make([]time.Time, horizon)
	for i := range dates {
		dates[i] = day.AddDate(0, 0, i+1)
	}
	return dates
}

// BuildPath pairs simulated prices with their calendar dates and step changes.
func BuildPath(today time.Time, lastClose float64, prices []float64) (*model.ForecastPath, error) {
	changes, err := DeriveChanges(lastClose, prices)
	if err != nil {
		return nil, err
	}
	dates := AlignDates(len(prices), today)

	points := make([]model.ForecastPoint, len(prices))
	for i, p := range prices {
		points[i] = model.ForecastPoint{Date: dates[i], Price: p, Change: changes[i]}
	}
	return &model.ForecastPath{
		Horizon:   len(prices),
		LastClose: lastClose,
		Today:     model.Day(today),
		Points:    points,
	}, nil
}
