package report

import (
	"testing"
	"time"

	"StockForecast/internal/calculator"
	"StockForecast/internal/model"
	"StockForecast/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "↑ 10.00%", FormatChange(model.ChangeMetric{Percent: 10, Direction: model.DirectionUp}))
	assert.Equal(t, "↓ 1.25%", FormatChange(model.ChangeMetric{Percent: -1.25, Direction: model.DirectionDown}))
}

func TestFormatForecast(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	path, err := calculator.BuildPath(today, 50, []float64{55, 44})
	require.NoError(t, err)

	out := FormatForecast(&session.Result{
		Path:       path,
		LastBar:    model.DailyBar{Date: today, Close: 50},
		NewsDate:   today,
		NewsTitles: []string{"Earnings beat"},
	})

	assert.Contains(t, out, "next 2 days")
	assert.Contains(t, out, "Last close: $50.00")
	assert.Contains(t, out, "• Earnings beat")
	assert.Contains(t, out, "11 Jan  $55.00  ↑ 10.00%")
	assert.Contains(t, out, "12 Jan  $44.00  ↓ 20.00%")
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(&model.HistoryIndicators{
		LastClose:    42,
		CloseChange:  model.ChangeMetric{Percent: -5},
		LastVolume:   9876,
		VolumeChange: model.ChangeMetric{Percent: 12.5},
	})
	assert.Contains(t, out, "Last price: $42.00 (-5.00%)")
	assert.Contains(t, out, "Volume: 9,876 (+12.50%)")
}

func TestFormatHistory(t *testing.T) {
	bars := []model.DailyBar{{
		Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Open: 1, High: 2, Low: 3, Close: 4, Volume: 1500,
	}}
	out := FormatHistory(bars, calculator.Range5Days)
	assert.Contains(t, out, "5 Days")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "1,500")
}
