package model

// HistoryIndicators holds the summary shown next to the history chart.
type HistoryIndicators struct {
	LastClose    float64      `json:"last_close"`
	CloseChange  ChangeMetric `json:"close_change"`
	LastVolume   int64        `json:"last_volume"`
	VolumeChange ChangeMetric `json:"volume_change"`
	MA20         float64      `json:"ma20"`
	MA50         float64      `json:"ma50"`
	RSI14        float64      `json:"rsi14"`
	High52w      float64      `json:"high_52w"`
	Low52w       float64      `json:"low_52w"`
	High30d      float64      `json:"high_30d"`
	Low30d       float64      `json:"low_30d"`
	Position52w  float64      `json:"position_52w"` // 0.0 ~ 1.0

	// Fallbacks names the indicators replaced by a default, with the reason.
	Fallbacks []string `json:"fallbacks,omitempty"`
}
