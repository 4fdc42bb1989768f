package server

import (
	"time"

	"StockForecast/internal/model"
)

// ForecastRequest is the body of POST /api/v1/forecast.
type ForecastRequest struct {
	NewsDate   string   `json:"news_date" binding:"omitempty,datetime=2006-01-02"`
	NewsTitles []string `json:"news_titles"`
	Horizon    int      `json:"horizon"`
}

// ForecastPoint is one card of the forecast response.
type ForecastPoint struct {
	Date          string          `json:"date"`
	Label         string          `json:"label"`
	Price         float64         `json:"price"`
	ChangePercent float64         `json:"change_percent"`
	Direction     model.Direction `json:"direction"`
}

// HistoryPoint is one historical close on the forecast chart.
type HistoryPoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// ForecastResponse is the body returned by POST /api/v1/forecast.
type ForecastResponse struct {
	SessionID  string          `json:"session_id"`
	Horizon    int             `json:"horizon"`
	LastClose  float64         `json:"last_close"`
	LastDate   string          `json:"last_date"`
	NewsDate   string          `json:"news_date"`
	NewsTitles []string        `json:"news_titles"`
	Points     []ForecastPoint `json:"points"`
	Tail       []HistoryPoint  `json:"tail"`
}

// HistoryResponse is the body returned by GET /api/v1/history.
type HistoryResponse struct {
	SessionID string           `json:"session_id"`
	Range     int              `json:"range"`
	Label     string           `json:"label"`
	EndDate   string           `json:"end_date"`
	Bars      []model.DailyBar `json:"bars"`
}

// SummaryResponse is the body returned by GET /api/v1/history/summary.
type SummaryResponse struct {
	SessionID string `json:"session_id"`
	*model.HistoryIndicators
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status   string    `json:"status"`
	Version  string    `json:"version"`
	Sessions int       `json:"sessions"`
	Time     time.Time `json:"time"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
