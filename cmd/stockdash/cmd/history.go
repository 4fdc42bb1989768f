package cmd

import (
	"fmt"
	"log"
	"time"

	"StockForecast/internal/calculator"
	"StockForecast/internal/collector"
	"StockForecast/internal/generator"
	"StockForecast/internal/report"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print a synthetic price history and its summary",
	Long: `Generate a synthetic daily history ending today and print the newest bars.

Examples:
  stockdash history
  stockdash history --range 30 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var (
	historyLength int
	historyRange  int
	historySeed   uint64
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLength, "length", "n", 0, "number of bars to generate (default from config)")
	historyCmd.Flags().IntVarP(&historyRange, "range", "r", int(calculator.DefaultRange), "window to print: 5, 10, 30, 90 or 365 days")
	historyCmd.Flags().Uint64Var(&historySeed, "seed", 0, "random seed (default from config, 0 = random)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := calculator.ParseTimeRange(historyRange)
	if err != nil {
		return err
	}
	length := cfg.History.Length
	if historyLength != 0 {
		length = historyLength
	}
	seed := cfg.History.Seed
	if historySeed != 0 {
		seed = historySeed
	}

	series, err := generator.NewHistoryGenerator(generator.NewSource(seed)).Generate(length, time.Now())
	if err != nil {
		return fmt.Errorf("generate history: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.FormatHistory(series.Tail(int(r)), r))

	ind, err := collector.Summarize(series)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	for _, f := range ind.Fallbacks {
		log.Printf("[WARN] summary: %s", f)
	}
	fmt.Fprint(out, report.FormatSummary(ind))
	return nil
}
