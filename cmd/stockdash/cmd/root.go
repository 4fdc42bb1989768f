package cmd

import (
	"fmt"
	"os"

	"StockForecast/internal/config"
	"StockForecast/internal/logx"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "stockdash",
	Short: "Stock prediction dashboard backend",
	Long: `stockdash serves a stock prediction dashboard backed by synthetic data.

Price history is generated randomly once per session and forecasts come
from a biased random walk. News headlines are accepted and echoed back
but do not influence the forecast.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultPath, "path to YAML config file")
}

// loadConfig loads, validates and applies the logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	logx.Setup(cfg.LogLevel, os.Stderr)
	return cfg, nil
}
