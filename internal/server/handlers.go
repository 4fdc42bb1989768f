package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"StockForecast/internal/calculator"
	"StockForecast/internal/collector"
	"StockForecast/internal/metrics"
	"StockForecast/internal/model"
	"StockForecast/internal/report"
	"StockForecast/internal/session"

	"github.com/gin-gonic/gin"
)

// Version is the API version reported by /health.
const Version = "1.0.0"

// Options configures the handlers.
type Options struct {
	SessionHeader  string // request and response header carrying the session ID
	Horizons       []int  // horizons offered, a subset of model.Horizons
	DefaultHorizon int
}

// Handlers serves the dashboard API on top of a session manager.
type Handlers struct {
	sessions *session.Manager
	opts     Options
}

// NewHandlers creates handlers for the given session manager.
func NewHandlers(sessions *session.Manager, opts Options) *Handlers {
	if opts.SessionHeader == "" {
		opts.SessionHeader = "X-Session-ID"
	}
	if len(opts.Horizons) == 0 {
		opts.Horizons = model.Horizons
	}
	if opts.DefaultHorizon == 0 {
		opts.DefaultHorizon = 5
	}
	return &Handlers{sessions: sessions, opts: opts}
}

func (h *Handlers) offered(horizon int) bool {
	for _, v := range h.opts.Horizons {
		if v == horizon {
			return true
		}
	}
	return false
}

// resolveSession resolves the caller's session and echoes its ID in the response header.
func (h *Handlers) resolveSession(c *gin.Context) *session.Session {
	s, created := h.sessions.GetOrCreate(c.GetHeader(h.opts.SessionHeader))
	if created {
		log.Printf("[DEBUG] new session %s", s.ID)
	}
	c.Header(h.opts.SessionHeader, s.ID)
	return s
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Sessions: h.sessions.Len(),
		Time:     h.sessions.Now(),
	})
}

// HandleHistory handles GET /api/v1/history?range=N.
//
// Response:
//
//	200 OK: HistoryResponse with the newest N bars
//	400 Bad Request: range is not one of 5, 10, 30, 90, 365
func (h *Handlers) HandleHistory(c *gin.Context) {
	r := calculator.DefaultRange
	if v := c.Query("range"); v != "" {
		days, err := strconv.Atoi(v)
		if err == nil {
			r, err = calculator.ParseTimeRange(days)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "range must be one of 5, 10, 30, 90, 365", Code: "INVALID_RANGE"})
			return
		}
	}

	s := h.resolveSession(c)
	series, err := s.History(h.sessions.Now())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		SessionID: s.ID,
		Range:     int(r),
		Label:     r.Label(),
		EndDate:   series.EndDate.Format(time.DateOnly),
		Bars:      series.Tail(int(r)),
	})
}

// HandleSummary handles GET /api/v1/history/summary.
func (h *Handlers) HandleSummary(c *gin.Context) {
	s := h.resolveSession(c)
	ind, err := collector.NewCollector(s).Collect(h.sessions.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	for _, f := range ind.Fallbacks {
		log.Printf("[WARN] session %s summary: %s", s.ID, f)
	}
	c.JSON(http.StatusOK, SummaryResponse{SessionID: s.ID, HistoryIndicators: ind})
}

// HandleForecast handles POST /api/v1/forecast.
//
// Response:
//
//	200 OK: ForecastResponse
//	400 Bad Request: malformed body, unsupported horizon or invalid news titles
func (h *Handlers) HandleForecast(c *gin.Context) {
	var req ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[WARN] invalid forecast request: %v", err)
		metrics.RecordForecast(req.Horizon, "invalid")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: "INVALID_REQUEST"})
		return
	}
	if req.Horizon == 0 {
		req.Horizon = h.opts.DefaultHorizon
	}
	if !h.offered(req.Horizon) {
		metrics.RecordForecast(req.Horizon, "invalid")
		writeError(c, fmt.Errorf("horizon %d not offered: %w", req.Horizon, model.ErrInvalidHorizon))
		return
	}

	now := h.sessions.Now()
	newsDate, err := parseNewsDate(req.NewsDate, now)
	if err != nil {
		metrics.RecordForecast(req.Horizon, "invalid")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	s := h.resolveSession(c)
	res, err := s.Forecast(session.Request{
		Today:      now,
		NewsDate:   newsDate,
		NewsTitles: req.NewsTitles,
		Horizon:    req.Horizon,
	})
	if err != nil {
		metrics.RecordForecast(req.Horizon, statusLabel(err))
		writeError(c, err)
		return
	}
	metrics.RecordForecast(req.Horizon, "ok")

	c.JSON(http.StatusOK, toForecastResponse(s.ID, res))
}

// parseNewsDate reads a YYYY-MM-DD news date in the location of now.
// An empty value means today.
func parseNewsDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return model.Day(now), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, raw, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("news_date %q: %w", raw, err)
	}
	return d, nil
}

func toForecastResponse(id string, res *session.Result) ForecastResponse {
	points := make([]ForecastPoint, len(res.Path.Points))
	for i, pt := range res.Path.Points {
		points[i] = ForecastPoint{
			Date:          pt.Date.Format(time.DateOnly),
			Label:         pt.Date.Format(report.DateLabel),
			Price:         pt.Price,
			ChangePercent: pt.Change.Percent,
			Direction:     pt.Change.Direction,
		}
	}
	tail := make([]HistoryPoint, len(res.Tail))
	for i, b := range res.Tail {
		tail[i] = HistoryPoint{Date: b.Date.Format(time.DateOnly), Close: b.Close}
	}
	titles := res.NewsTitles
	if titles == nil {
		titles = []string{}
	}
	return ForecastResponse{
		SessionID:  id,
		Horizon:    res.Path.Horizon,
		LastClose:  res.Path.LastClose,
		LastDate:   res.LastBar.Date.Format(time.DateOnly),
		NewsDate:   res.NewsDate.Format(time.DateOnly),
		NewsTitles: titles,
		Points:     points,
		Tail:       tail,
	}
}

func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, model.ErrInvalidHorizon):
		status, code = http.StatusBadRequest, "INVALID_HORIZON"
	case errors.Is(err, model.ErrInvalidPrice):
		status, code = http.StatusBadRequest, "INVALID_PRICE"
	case errors.Is(err, model.ErrEmptyHistory):
		status, code = http.StatusBadRequest, "EMPTY_HISTORY"
	case errors.Is(err, model.ErrInvalidNews):
		status, code = http.StatusBadRequest, "INVALID_NEWS"
	}
	if status == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

func statusLabel(err error) string {
	if errors.Is(err, model.ErrInvalidHorizon) || errors.Is(err, model.ErrInvalidNews) {
		return "invalid"
	}
	return "error"
}
