package collector

import (
	"fmt"
	"time"

	"StockForecast/internal/calculator"
	"StockForecast/internal/model"
)

// Collector computes the history summary shown beside the price chart.
type Collector struct {
	Source Source
}

// NewCollector creates a new Collector.
func NewCollector(src Source) *Collector {
	return &Collector{Source: src}
}

// Collect loads the history and computes all indicators. It needs at least
// two bars for the day-over-day deltas.
func (c *Collector) Collect(today time.Time) (*model.HistoryIndicators, error) {
	series, err := c.Source.History(today)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return Summarize(series)
}

// Summarize computes the indicators of a series. Indicators the series is too
// short for fall back to a default and are listed in Fallbacks.
func Summarize(series *model.HistorySeries) (*model.HistoryIndicators, error) {
	prev, last, err := series.LastTwo()
	if err != nil {
		return nil, fmt.Errorf("previous-day comparison needs 2 bars, have %d: %w", series.Len(), err)
	}

	ind := &model.HistoryIndicators{LastClose: last.Close, LastVolume: last.Volume}

	if ind.CloseChange, err = calculator.ChangePercent(prev.Close, last.Close); err != nil {
		return nil, fmt.Errorf("close change: %w", err)
	}
	if ind.VolumeChange, err = calculator.ChangePercent(float64(prev.Volume), float64(last.Volume)); err != nil {
		return nil, fmt.Errorf("volume change: %w", err)
	}

	bars := series.Bars

	if ma, err := calculator.CalculateMA20(bars); err != nil {
		ind.Fallbacks = append(ind.Fallbacks, fmt.Sprintf("MA20 %v, using last close", err))
		ind.MA20 = last.Close
	} else {
		ind.MA20 = ma
	}

	if ma, err := calculator.CalculateMA50(bars); err != nil {
		ind.Fallbacks = append(ind.Fallbacks, fmt.Sprintf("MA50 %v, using last close", err))
		ind.MA50 = last.Close
	} else {
		ind.MA50 = ma
	}

	if rsi, err := calculator.CalculateRSI(bars, 14); err != nil {
		ind.Fallbacks = append(ind.Fallbacks, fmt.Sprintf("RSI14 %v, defaulting to %.0f", err, calculator.NeutralRSI))
		ind.RSI14 = calculator.NeutralRSI
	} else {
		ind.RSI14 = rsi
	}

	// Ranges cannot fail here since bars is non-empty.
	ind.High52w, ind.Low52w, _ = calculator.Calculate52WeekRange(bars)
	ind.High30d, ind.Low30d, _ = calculator.Calculate30DayRange(bars)

	if pos, err := calculator.CalculatePosition(last.Close, ind.High52w, ind.Low52w); err != nil {
		// High may sit below Low since the bar fields are drawn independently.
		ind.Position52w = 0.5
	} else {
		ind.Position52w = pos
	}

	return ind, nil
}
