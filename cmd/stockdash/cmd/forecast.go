package cmd

import (
	"fmt"
	"time"

	"StockForecast/internal/generator"
	"StockForecast/internal/news"
	"StockForecast/internal/report"
	"StockForecast/internal/session"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Simulate a price forecast from today's synthetic close",
	Long: `Generate today's synthetic history and simulate the next days.

Examples:
  stockdash forecast --horizon 5
  stockdash forecast -H 10 --news "Rate cut expected
Earnings beat"`,
	Args: cobra.NoArgs,
	RunE: runForecast,
}

var (
	forecastHorizon int
	forecastNews    string
	forecastSeed    uint64
)

func init() {
	rootCmd.AddCommand(forecastCmd)
	forecastCmd.Flags().IntVarP(&forecastHorizon, "horizon", "H", 0, "days to forecast: 1, 2, 3, 5 or 10 (default from config)")
	forecastCmd.Flags().StringVar(&forecastNews, "news", "", "news headlines, one per line")
	forecastCmd.Flags().Uint64Var(&forecastSeed, "seed", 0, "random seed (default from config, 0 = random)")
}

func runForecast(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	horizon := cfg.Forecast.DefaultHorizon
	if forecastHorizon != 0 {
		horizon = forecastHorizon
	}
	seed := cfg.History.Seed
	if forecastSeed != 0 {
		seed = forecastSeed
	}

	now := time.Now()
	s := session.New("cli", cfg.History.Length, generator.NewSource(seed), cfg.ForecastParams(), now)
	res, err := s.Forecast(session.Request{
		Today:      now,
		NewsDate:   now,
		NewsTitles: news.ParseTitles(forecastNews),
		Horizon:    horizon,
	})
	if err != nil {
		return fmt.Errorf("forecast: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), report.FormatForecast(res))
	return nil
}
