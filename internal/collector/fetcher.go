package collector

import (
	"time"

	"StockForecast/internal/model"
)

// Source provides the history a summary is computed from.
type Source interface {
	History(today time.Time) (*model.HistorySeries, error)
}

// StaticSource serves a fixed series, for tests and the CLI.
type StaticSource struct {
	Series *model.HistorySeries
}

func (s *StaticSource) History(_ time.Time) (*model.HistorySeries, error) {
	if s.Series.Len() == 0 {
		return nil, model.ErrEmptyHistory
	}
	return s.Series, nil
}
