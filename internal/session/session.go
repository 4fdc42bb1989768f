package session

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"StockForecast/internal/calculator"
	"StockForecast/internal/forecast"
	"StockForecast/internal/generator"
	"StockForecast/internal/metrics"
	"StockForecast/internal/model"
	"StockForecast/internal/news"
)

// TailLength is the number of historical bars returned with a forecast.
const TailLength = 5

type historyKey struct {
	length int
	end    time.Time
}

// Session owns one user's random source and cached history.
// All use of the random source happens under mu.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	length   int
	gen      *generator.HistoryGenerator
	sim      *forecast.Simulator
	end      time.Time
	history  map[historyKey]*model.HistorySeries
	lastSeen time.Time
}

// New creates a session generating histories of the given length.
func New(id string, length int, rng *rand.Rand, params forecast.Params, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		length:    length,
		gen:       generator.NewHistoryGenerator(rng),
		sim:       forecast.NewSimulator(rng, params),
		lastSeen:  now,
	}
}

// History returns the session history ending at today.
func (s *Session) History(today time.Time) (*model.HistorySeries, error) {
	return s.HistoryN(s.length, today)
}

// HistoryN returns the cached series for (length, today), generating it on
// first use. Series of different lengths are cached side by side; a new
// end date drops every series of the previous one.
func (s *Session) HistoryN(length int, today time.Time) (*model.HistorySeries, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyLocked(length, today)
}

func (s *Session) historyLocked(length int, today time.Time) (*model.HistorySeries, error) {
	key := historyKey{length: length, end: model.Day(today)}
	if !s.end.Equal(key.end) {
		s.history = nil
	}
	if series, ok := s.history[key]; ok {
		return series, nil
	}

	series, err := s.gen.Generate(length, key.end)
	if err != nil {
		return nil, err
	}
	metrics.RecordHistoryGenerated()
	if s.history == nil {
		s.history = make(map[historyKey]*model.HistorySeries)
	}
	s.end = key.end
	s.history[key] = series
	return series, nil
}

// Invalidate drops the cached history.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.end = time.Time{}
}

// CachedEnd reports the end date of the cached history, if any.
func (s *Session) CachedEnd() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return time.Time{}, false
	}
	return s.end, true
}

// Request is one forecast submission.
type Request struct {
	Today      time.Time
	NewsDate   time.Time
	NewsTitles []string
	Horizon    int
}

// Result is a forecast together with the context it was derived from.
type Result struct {
	Path       *model.ForecastPath
	LastBar    model.DailyBar
	Tail       []model.DailyBar
	NewsDate   time.Time
	NewsTitles []string
}

// Forecast simulates req.Horizon days from the last historical close.
func (s *Session) Forecast(req Request) (*Result, error) {
	if !model.ValidHorizon(req.Horizon) {
		return nil, fmt.Errorf("horizon %d: %w", req.Horizon, model.ErrInvalidHorizon)
	}
	titles, err := news.Normalize(req.NewsTitles)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	series, err := s.historyLocked(s.length, req.Today)
	if err != nil {
		return nil, err
	}
	last, err := series.Last()
	if err != nil {
		return nil, err
	}

	clampedBefore := s.sim.Clamped
	prices, err := s.sim.Simulate(last.Close, req.Horizon)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	metrics.RecordClamps(s.sim.Clamped - clampedBefore)

	path, err := calculator.BuildPath(req.Today, last.Close, prices)
	if err != nil {
		return nil, fmt.Errorf("derive metrics: %w", err)
	}

	tail := series.Tail(TailLength)
	return &Result{
		Path:       path,
		LastBar:    last,
		Tail:       append([]model.DailyBar(nil), tail...),
		NewsDate:   req.NewsDate,
		NewsTitles: titles,
	}, nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
