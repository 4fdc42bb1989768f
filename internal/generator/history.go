package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"StockForecast/internal/model"
)

// Value ranges of the synthetic bars. Upper bounds are exclusive.
const (
	MaxPrice    = 100.0
	MinVolume   = 1000
	MaxVolume   = 10000
	MinStockNum = 1
	MaxStockNum = 100

	// DefaultLength is one calendar year of daily bars.
	DefaultLength = 365
)

// HistoryGenerator produces synthetic daily OHLCV series.
// It is not safe for concurrent use because *rand.Rand is not.
type HistoryGenerator struct {
	rng *rand.Rand
}

// NewHistoryGenerator creates a generator drawing from rng.
func NewHistoryGenerator(rng *rand.Rand) *HistoryGenerator {
	return &HistoryGenerator{rng: rng}
}

// Generate returns length consecutive daily bars ending at endDate inclusive.
// Every field is drawn independently, so High is not guaranteed to exceed Low.
func (g *HistoryGenerator) Generate(length int, endDate time.Time) (*model.HistorySeries, error) {
	if length <= 0 {
		return nil, fmt.Errorf("generate %d bars: %w", length, model.ErrEmptyHistory)
	}

	end := model.Day(endDate)
	start := end.AddDate(0, 0, -(length - 1))

	bars := make([]model.DailyBar, length)
	for i := range bars {
		bars[i] = model.DailyBar{
			Date:     start.AddDate(0, 0, i),
			Open:     g.rng.Float64() * MaxPrice,
			High:     g.rng.Float64() * MaxPrice,
			Low:      g.rng.Float64() * MaxPrice,
			Close:    g.rng.Float64() * MaxPrice,
			Volume:   MinVolume + g.rng.Int64N(MaxVolume-MinVolume),
			StockNum: MinStockNum + g.rng.IntN(MaxStockNum-MinStockNum),
		}
	}

	return &model.HistorySeries{Bars: bars, EndDate: end}, nil
}

// NewSource returns a random source for the given seed.
// A zero seed draws one from the global generator.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
