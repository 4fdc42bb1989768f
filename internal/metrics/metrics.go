package metrics

import (
	"strconv"

	"StockForecast/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// forecastRequests counts forecast submissions.
	// Labels: horizon (a supported horizon or "other"), status (ok, invalid, error)
	forecastRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stockforecast",
		Subsystem: "forecast",
		Name:      "requests_total",
		Help:      "Total forecast requests by horizon and outcome",
	}, []string{"horizon", "status"})

	// forecastClamps counts simulated steps floored at the minimum price.
	forecastClamps = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stockforecast",
		Subsystem: "forecast",
		Name:      "clamped_steps_total",
		Help:      "Simulated steps that exhausted resampling and were clamped",
	})

	// historyGenerations counts cache misses of the per-session history.
	historyGenerations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stockforecast",
		Subsystem: "history",
		Name:      "generations_total",
		Help:      "Synthetic history series generated",
	})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "stockforecast",
		Subsystem: "session",
		Name:      "active",
		Help:      "Sessions currently held in memory",
	})

	evictedSessions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stockforecast",
		Subsystem: "session",
		Name:      "evicted_total",
		Help:      "Sessions evicted after the idle TTL",
	})
)

// OtherHorizon is the label value shared by all unsupported horizons.
const OtherHorizon = "other"

// RecordForecast counts one forecast request.
func RecordForecast(horizon int, status string) {
	forecastRequests.WithLabelValues(horizonLabel(horizon), status).Inc()
}

func horizonLabel(horizon int) string {
	if !model.ValidHorizon(horizon) {
		return OtherHorizon
	}
	return strconv.Itoa(horizon)
}

// RecordClamps adds n clamped steps.
func RecordClamps(n int) {
	if n > 0 {
		forecastClamps.Add(float64(n))
	}
}

// RecordHistoryGenerated counts one history generation.
func RecordHistoryGenerated() { historyGenerations.Inc() }

// SetActiveSessions sets the session gauge.
func SetActiveSessions(n int) { activeSessions.Set(float64(n)) }

// RecordEvicted adds n evicted sessions.
func RecordEvicted(n int) {
	if n > 0 {
		evictedSessions.Add(float64(n))
	}
}
