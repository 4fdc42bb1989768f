package forecast

import (
	"fmt"
	"math"
	"math/rand/v2"

	"StockForecast/internal/model"
)

// Defaults of the random walk.
const (
	DefaultDrift       = 0.002
	DefaultVolatility  = 0.015
	DefaultMaxResample = 100

	// MinPrice is the floor used when every resample still ends non-positive.
	MinPrice = 1e-6
)

// Params configures the biased random walk.
type Params struct {
	Drift       float64 // mean per-step return
	Volatility  float64 // standard deviation of per-step return
	MaxResample int     // redraws allowed for a step that would end non-positive
}

// DefaultParams returns the dashboard's walk parameters.
func DefaultParams() Params {
	return Params{
		Drift:       DefaultDrift,
		Volatility:  DefaultVolatility,
		MaxResample: DefaultMaxResample,
	}
}

// Simulator produces future prices with a normal-increment random walk.
// It is not safe for concurrent use because *rand.Rand is not.
type Simulator struct {
	rng    *rand.Rand
	params Params

	// Clamped counts steps that fell back to MinPrice.
	Clamped int
}

// NewSimulator creates a simulator drawing from rng.
func NewSimulator(rng *rand.Rand, params Params) *Simulator {
	if params.MaxResample <= 0 {
		params.MaxResample = DefaultMaxResample
	}
	return &Simulator{rng: rng, params: params}
}

// Params returns the walk parameters in use.
func (s *Simulator) Params() Params { return s.params }

// Simulate walks horizon steps from startPrice and returns the prices after
// each step. The start price itself is not part of the result.
func (s *Simulator) Simulate(startPrice float64, horizon int) ([]float64, error) {
	if startPrice <= 0 || math.IsNaN(startPrice) || math.IsInf(startPrice, 0) {
		return nil, fmt.Errorf("start price %v: %w", startPrice, model.ErrInvalidPrice)
	}
	if !model.ValidHorizon(horizon) {
		return nil, fmt.Errorf("horizon %d: %w", horizon, model.ErrInvalidHorizon)
	}

	prices := make([]float64, horizon)
	prev := startPrice
	for i := range prices {
		prices[i] = s.step(prev)
		prev = prices[i]
	}
	return prices, nil
}

// step applies one draw. A draw that would leave the price non-positive is
// redrawn; after MaxResample failures the price is clamped to MinPrice.
func (s *Simulator) step(prev float64) float64 {
	for range s.params.MaxResample {
		change := s.params.Drift + s.params.Volatility*s.rng.NormFloat64()
		next := prev * (1 + change)
		if next > 0 && !math.IsInf(next, 0) {
			return next
		}
	}
	s.Clamped++
	return MinPrice
}
