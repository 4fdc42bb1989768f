package model

import "time"

// Direction is the sign indicator of a price change.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Arrow returns the display arrow for the direction.
func (d Direction) Arrow() string {
	switch d {
	case DirectionUp:
		return "↑"
	case DirectionDown:
		return "↓"
	default:
		return "→"
	}
}

// ChangeMetric is a derived period-over-period change. It is never stored.
type ChangeMetric struct {
	Percent   float64   `json:"change_percent"`
	Direction Direction `json:"direction"`
}

// ForecastPoint is one simulated future day.
type ForecastPoint struct {
	Date   time.Time    `json:"date"`
	Price  float64      `json:"price"`
	Change ChangeMetric `json:"change"`
}

// ForecastPath is the simulated future, one point per horizon day.
type ForecastPath struct {
	Horizon   int             `json:"horizon"`
	LastClose float64         `json:"last_close"`
	Today     time.Time       `json:"today"`
	Points    []ForecastPoint `json:"points"`
}

// Prices returns the simulated prices in path order.
func (p *ForecastPath) Prices() []float64 {
	prices := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		prices[i] = pt.Price
	}
	return prices
}
