package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockForecast/internal/forecast"
	"StockForecast/internal/model"
	"StockForecast/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testToday = time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

func setupTestRouter(t *testing.T, opts Options) (*gin.Engine, *session.Manager) {
	t.Helper()
	m := session.NewManager(session.Config{HistoryLength: 365, Seed: 42, Params: forecast.DefaultParams(), TTL: time.Hour})
	m.SetClock(func() time.Time { return testToday })
	return New(":0", NewHandlers(m, opts)).Router, m
}

func do(t *testing.T, r http.Handler, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	r, _ := setupTestRouter(t, Options{})
	w := do(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, Version, resp.Version)
}

func TestHandleHistory(t *testing.T) {
	r, m := setupTestRouter(t, Options{})

	w := do(t, r, http.MethodGet, "/api/v1/history?range=30", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get("X-Session-ID")
	require.NotEmpty(t, id)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, 30, resp.Range)
	assert.Equal(t, "2024-01-10", resp.EndDate)
	require.Len(t, resp.Bars, 30)
	assert.True(t, resp.Bars[29].Date.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))

	// Same session, same series.
	w2 := do(t, r, http.MethodGet, "/api/v1/history?range=30", id, nil)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, id, w2.Header().Get("X-Session-ID"))
	var resp2 HistoryResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp2))
	assert.Equal(t, resp.Bars, resp2.Bars)
	assert.Equal(t, 1, m.Len())
}

func TestHandleHistory_DefaultAndInvalidRange(t *testing.T) {
	r, _ := setupTestRouter(t, Options{})

	w := do(t, r, http.MethodGet, "/api/v1/history", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bars, 10)

	for _, q := range []string{"7", "abc"} {
		w = do(t, r, http.MethodGet, "/api/v1/history?range="+q, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_RANGE")
	}
}

func TestHandleSummary(t *testing.T) {
	r, _ := setupTestRouter(t, Options{})
	w := do(t, r, http.MethodGet, "/api/v1/history/summary", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.HistoryIndicators)
	assert.Greater(t, resp.LastVolume, int64(0))
	assert.Contains(t, []model.Direction{model.DirectionUp, model.DirectionDown}, resp.CloseChange.Direction)
}

func TestHandleForecast(t *testing.T) {
	r, _ := setupTestRouter(t, Options{})

	hist := do(t, r, http.MethodGet, "/api/v1/history?range=5", "", nil)
	require.Equal(t, http.StatusOK, hist.Code)
	id := hist.Header().Get("X-Session-ID")
	var h HistoryResponse
	require.NoError(t, json.Unmarshal(hist.Body.Bytes(), &h))

	w := do(t, r, http.MethodPost, "/api/v1/forecast", id, ForecastRequest{
		NewsDate:   "2024-01-09",
		NewsTitles: []string{"Berita 1", "  ", " Berita 2 "},
		Horizon:    5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, 5, resp.Horizon)
	assert.Equal(t, h.Bars[4].Close, resp.LastClose)
	assert.Equal(t, "2024-01-10", resp.LastDate)
	assert.Equal(t, "2024-01-09", resp.NewsDate)
	assert.Equal(t, []string{"Berita 1", "Berita 2"}, resp.NewsTitles)
	require.Len(t, resp.Tail, 5)
	require.Len(t, resp.Points, 5)

	wantDates := []string{"2024-01-11", "2024-01-12", "2024-01-13", "2024-01-14", "2024-01-15"}
	prev := resp.LastClose
	for i, pt := range resp.Points {
		assert.Equal(t, wantDates[i], pt.Date)
		assert.Greater(t, pt.Price, 0.0)
		assert.InDelta(t, (pt.Price-prev)/prev*100, pt.ChangePercent, 1e-9)
		prev = pt.Price
	}
	assert.Equal(t, "11 Jan", resp.Points[0].Label)
}

func TestHandleForecast_DefaultHorizon(t *testing.T) {
	r, _ := setupTestRouter(t, Options{DefaultHorizon: 3, Horizons: []int{1, 3}})
	w := do(t, r, http.MethodPost, "/api/v1/forecast", "", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Points, 3)
	assert.Empty(t, resp.NewsTitles)
}

func TestHandleForecast_Errors(t *testing.T) {
	r, _ := setupTestRouter(t, Options{Horizons: []int{1, 2, 3, 5}})

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"unsupported horizon", ForecastRequest{Horizon: 4}, http.StatusBadRequest, "INVALID_HORIZON"},
		{"horizon not offered", ForecastRequest{Horizon: 10}, http.StatusBadRequest, "INVALID_HORIZON"},
		{"negative horizon", ForecastRequest{Horizon: -1}, http.StatusBadRequest, "INVALID_HORIZON"},
		{"bad news date", ForecastRequest{Horizon: 1, NewsDate: "10/01/2024"}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"not json", "horizon=5", http.StatusBadRequest, "INVALID_REQUEST"},
		{"title too long", ForecastRequest{Horizon: 1, NewsTitles: []string{string(bytes.Repeat([]byte("x"), 301))}}, http.StatusBadRequest, "INVALID_NEWS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/v1/forecast", "", tt.body)
			assert.Equal(t, tt.status, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t, Options{})
	do(t, r, http.MethodPost, "/api/v1/forecast", "", ForecastRequest{Horizon: 2})

	w := do(t, r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stockforecast_forecast_requests_total")
}

func TestMetricsEndpoint_UnsupportedHorizonsBucketed(t *testing.T) {
	r, _ := setupTestRouter(t, Options{})
	for _, h := range []int{4, 99, 123456, -5} {
		do(t, r, http.MethodPost, "/api/v1/forecast", "", ForecastRequest{Horizon: h})
	}

	w := do(t, r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `horizon="other"`)
	assert.NotContains(t, body, `horizon="123456"`)
	assert.NotContains(t, body, `horizon="-5"`)
}

func TestParseNewsDate(t *testing.T) {
	d, err := parseNewsDate("", testToday)
	require.NoError(t, err)
	assert.Equal(t, model.Day(testToday), d)

	d, err = parseNewsDate("2024-01-09", testToday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), d)

	_, err = parseNewsDate("2024-13-40", testToday)
	assert.Error(t, err)
}
