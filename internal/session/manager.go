package session

import (
	"log"
	"sync"
	"time"

	"StockForecast/internal/forecast"
	"StockForecast/internal/generator"
	"StockForecast/internal/metrics"
	"StockForecast/internal/model"

	"github.com/google/uuid"
)

// Config controls how sessions are created and expired.
type Config struct {
	HistoryLength int
	Seed          uint64 // 0 seeds every session randomly
	Params        forecast.Params
	TTL           time.Duration
}

// Manager holds sessions by ID with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	cfg      Config
	sessions map[string]*Session
	now      func() time.Time
}

// NewManager creates an empty Manager.
func NewManager(cfg Config) *Manager {
	if cfg.HistoryLength <= 0 {
		cfg.HistoryLength = generator.DefaultLength
	}
	return &Manager{
		cfg:      cfg,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// SetClock replaces the time source.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// Now returns the manager's current time.
func (m *Manager) Now() time.Time { return m.now() }

// Create starts a new session with a fresh ID.
func (m *Manager) Create() *Session {
	now := m.now()
	s := New(uuid.NewString(), m.cfg.HistoryLength, generator.NewSource(m.cfg.Seed), m.cfg.Params, now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.SetActiveSessions(n)
	return s
}

// Get returns the session with id and marks it active.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		s.touch(m.now())
	}
	return s, ok
}

// GetOrCreate returns the session with id, or a new one when id is unknown.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}
	return m.Create(), true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle removes sessions idle for longer than the TTL.
func (m *Manager) EvictIdle() int {
	if m.cfg.TTL <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.cfg.TTL)

	m.mu.Lock()
	evicted := 0
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.RecordEvicted(evicted)
	metrics.SetActiveSessions(n)
	if evicted > 0 {
		log.Printf("[INFO] evicted %d idle sessions, %d remaining", evicted, n)
	}
	return evicted
}

// Rollover drops cached histories that do not end at today.
func (m *Manager) Rollover(today time.Time) int {
	day := model.Day(today)

	m.mu.Lock()
	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	m.mu.Unlock()

	stale := 0
	for _, s := range list {
		if end, ok := s.CachedEnd(); ok && !end.Equal(day) {
			s.Invalidate()
			stale++
		}
	}
	if stale > 0 {
		log.Printf("[INFO] day rollover to %s: invalidated %d cached histories", day.Format("2006-01-02"), stale)
	}
	return stale
}
