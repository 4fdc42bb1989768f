package model

import "time"

// DailyBar represents a single synthetic trading day.
type DailyBar struct {
	Date     time.Time `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	Volume   int64     `json:"volume"`
	StockNum int       `json:"stock_num"`
}

// HistorySeries holds daily bars ordered oldest to newest.
type HistorySeries struct {
	Bars    []DailyBar
	EndDate time.Time
}

// Day truncates t to midnight of its calendar day in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Len returns the number of bars.
func (h *HistorySeries) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Bars)
}

// Last returns the newest bar.
func (h *HistorySeries) Last() (DailyBar, error) {
	if h.Len() == 0 {
		return DailyBar{}, ErrEmptyHistory
	}
	return h.Bars[len(h.Bars)-1], nil
}

// LastClose returns the close of the newest bar.
func (h *HistorySeries) LastClose() (float64, error) {
	b, err := h.Last()
	if err != nil {
		return 0, err
	}
	return b.Close, nil
}

// LastTwo returns the previous and the newest bar, for day-over-day deltas.
func (h *HistorySeries) LastTwo() (prev, last DailyBar, err error) {
	if h.Len() < 2 {
		return DailyBar{}, DailyBar{}, ErrEmptyHistory
	}
	n := len(h.Bars)
	return h.Bars[n-2], h.Bars[n-1], nil
}

// Tail returns the newest n bars. The returned slice shares storage with the series.
func (h *HistorySeries) Tail(n int) []DailyBar {
	if h.Len() == 0 || n <= 0 {
		return nil
	}
	if n > len(h.Bars) {
		n = len(h.Bars)
	}
	return h.Bars[len(h.Bars)-n:]
}

// Closes extracts close prices in series order.
func Closes(bars []DailyBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
