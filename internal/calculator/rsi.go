package calculator

import (
	"errors"

	"StockForecast/internal/model"
)

// NeutralRSI is reported when there are not enough closes.
const NeutralRSI = 50.0

// CalculateRSI computes the Wilder-smoothed RSI of the bar closes.
func CalculateRSI(bars []model.DailyBar, period int) (float64, error) {
	return RSI(model.Closes(bars), period)
}

// RSI computes the Wilder-smoothed RSI over period. It needs period+1 closes
// and returns NeutralRSI otherwise.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period+1 {
		return NeutralRSI, nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		g, l := gainLoss(closes[i-1], closes[i])
		avgGain += g
		avgLoss += l
	}
	p := float64(period)
	avgGain /= p
	avgLoss /= p

	for i := period + 1; i < len(closes); i++ {
		g, l := gainLoss(closes[i-1], closes[i])
		avgGain = (avgGain*(p-1) + g) / p
		avgLoss = (avgLoss*(p-1) + l) / p
	}

	if avgLoss == 0 {
		return 100.0, nil
	}
	return 100.0 - 100.0/(1.0+avgGain/avgLoss), nil
}

func gainLoss(prev, cur float64) (gain, loss float64) {
	if d := cur - prev; d > 0 {
		return d, 0
	}
	return 0, prev - cur
}
