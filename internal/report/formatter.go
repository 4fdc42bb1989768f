package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"StockForecast/internal/calculator"
	"StockForecast/internal/model"
	"StockForecast/internal/session"

	"github.com/dustin/go-humanize"
)

// DateLabel is the short date format used on forecast cards.
const DateLabel = "02 Jan"

// FormatForecast renders forecast cards, one line per simulated day.
func FormatForecast(res *session.Result) string {
	var b strings.Builder

	path := res.Path
	b.WriteString(fmt.Sprintf("📈 Forecast for the next %d days | from %s\n\n", path.Horizon, path.Today.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Last close: $%.2f (%s)\n", path.LastClose, res.LastBar.Date.Format("2006-01-02")))

	if len(res.NewsTitles) > 0 {
		b.WriteString(fmt.Sprintf("News (%s):\n", res.NewsDate.Format("2006-01-02")))
		for _, t := range res.NewsTitles {
			b.WriteString(fmt.Sprintf("  • %s\n", t))
		}
	}

	b.WriteString("\nDetailed forecast:\n")
	for _, pt := range path.Points {
		b.WriteString(fmt.Sprintf("  %s  $%.2f  %s\n", pt.Date.Format(DateLabel), pt.Price, FormatChange(pt.Change)))
	}
	return b.String()
}

// FormatChange renders a change as arrow and absolute percentage, e.g. "↓ 1.25%".
func FormatChange(c model.ChangeMetric) string {
	return fmt.Sprintf("%s %.2f%%", c.Direction.Arrow(), math.Abs(c.Percent))
}

// FormatSummary renders the history metrics panel.
func FormatSummary(ind *model.HistoryIndicators) string {
	var b strings.Builder
	b.WriteString("📊 Historical analysis\n\n")
	b.WriteString(fmt.Sprintf("Last price: $%.2f (%+.2f%%)\n", ind.LastClose, ind.CloseChange.Percent))
	b.WriteString(fmt.Sprintf("Volume: %s (%+.2f%%)\n", humanize.Comma(ind.LastVolume), ind.VolumeChange.Percent))
	b.WriteString(fmt.Sprintf("MA20: %.2f | MA50: %.2f | RSI14: %.1f\n", ind.MA20, ind.MA50, ind.RSI14))
	b.WriteString(fmt.Sprintf("52w range: %.2f ~ %.2f (position %.0f%%)\n", ind.Low52w, ind.High52w, ind.Position52w*100))
	b.WriteString(fmt.Sprintf("30d range: %.2f ~ %.2f\n", ind.Low30d, ind.High30d))
	return b.String()
}

// FormatHistory renders the newest bars of a window as a table.
func FormatHistory(bars []model.DailyBar, r calculator.TimeRange) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Price history | %s\n\n", r.Label()))
	b.WriteString(fmt.Sprintf("%-10s %9s %9s %9s %9s %8s\n", "Date", "Open", "High", "Low", "Close", "Volume"))
	for _, bar := range bars {
		b.WriteString(fmt.Sprintf("%-10s %9s %9s %9s %9s %8s\n",
			bar.Date.Format(time.DateOnly),
			money(bar.Open), money(bar.High), money(bar.Low), money(bar.Close),
			humanize.Comma(bar.Volume)))
	}
	return b.String()
}

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }
