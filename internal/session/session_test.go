package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockForecast/internal/forecast"
	"StockForecast/internal/generator"
	"StockForecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(seed uint64) *Session {
	return New("test", 365, generator.NewSource(seed), forecast.DefaultParams(), time.Now())
}

func TestHistory_CachedForSameDay(t *testing.T) {
	s := newTestSession(1)
	morning := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)

	a, err := s.History(morning)
	require.NoError(t, err)
	b, err := s.History(evening)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, a.Bars, b.Bars)
}

func TestHistory_NewDayRegenerates(t *testing.T) {
	s := newTestSession(1)
	a, err := s.History(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b, err := s.History(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), b.Bars[len(b.Bars)-1].Date)
}

func TestInvalidate(t *testing.T) {
	s := newTestSession(1)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := s.History(day)
	require.NoError(t, err)

	end, ok := s.CachedEnd()
	require.True(t, ok)
	assert.Equal(t, day, end)

	s.Invalidate()
	_, ok = s.CachedEnd()
	assert.False(t, ok)

	b, err := s.History(day)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestHistoryN_LengthsCachedSideBySide(t *testing.T) {
	s := newTestSession(1)
	day := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	full, err := s.History(day)
	require.NoError(t, err)
	window, err := s.HistoryN(30, day)
	require.NoError(t, err)
	require.Len(t, window.Bars, 30)

	again, err := s.History(day)
	require.NoError(t, err)
	assert.Same(t, full, again)

	windowAgain, err := s.HistoryN(30, day)
	require.NoError(t, err)
	assert.Same(t, window, windowAgain)

	// A new day drops both lengths.
	next, err := s.History(day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.NotSame(t, full, next)
	end, ok := s.CachedEnd()
	require.True(t, ok)
	assert.Equal(t, model.Day(day.AddDate(0, 0, 1)), end)
}

func TestHistoryN_InvalidLength(t *testing.T) {
	s := newTestSession(1)
	_, err := s.HistoryN(0, time.Now())
	assert.True(t, errors.Is(err, model.ErrEmptyHistory))
}

func TestForecast_EndToEnd(t *testing.T) {
	s := newTestSession(2024)
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	series, err := s.History(today)
	require.NoError(t, err)
	require.Len(t, series.Bars, 365)
	lastClose, err := series.LastClose()
	require.NoError(t, err)

	res, err := s.Forecast(Request{Today: today, Horizon: 5, NewsTitles: []string{" Rate cut expected ", ""}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Rate cut expected"}, res.NewsTitles)
	assert.Equal(t, lastClose, res.Path.LastClose)
	assert.Len(t, res.Tail, TailLength)
	require.Len(t, res.Path.Points, 5)

	prev := lastClose
	for i, pt := range res.Path.Points {
		assert.Equal(t, today.AddDate(0, 0, i+1), pt.Date)
		assert.Greater(t, pt.Price, 0.0)
		assert.False(t, math.IsNaN(pt.Change.Percent) || math.IsInf(pt.Change.Percent, 0))
		assert.InDelta(t, (pt.Price-prev)/prev*100, pt.Change.Percent, 1e-9)
		prev = pt.Price
	}
}

func TestForecast_Deterministic(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	a, err := newTestSession(77).Forecast(Request{Today: today, Horizon: 10})
	require.NoError(t, err)
	b, err := newTestSession(77).Forecast(Request{Today: today, Horizon: 10})
	require.NoError(t, err)
	assert.Equal(t, a.Path, b.Path)
}

func TestForecast_Errors(t *testing.T) {
	s := newTestSession(1)
	_, err := s.Forecast(Request{Today: time.Now(), Horizon: 4})
	assert.True(t, errors.Is(err, model.ErrInvalidHorizon))

	_, err = s.Forecast(Request{Today: time.Now(), Horizon: 5, NewsTitles: []string{string(make([]byte, 400))}})
	assert.True(t, errors.Is(err, model.ErrInvalidNews))
}
