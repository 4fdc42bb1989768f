package cmd

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"StockForecast/internal/scheduler"
	"StockForecast/internal/server"
	"StockForecast/internal/session"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.Println("[INFO] stockdash starting...")

	sessions := session.NewManager(session.Config{
		HistoryLength: cfg.History.Length,
		Seed:          cfg.History.Seed,
		Params:        cfg.ForecastParams(),
		TTL:           cfg.TTL(),
	})

	sched := scheduler.NewScheduler(sessions)
	if err := sched.RegisterAll(cfg.Schedule.RolloverCron, cfg.Schedule.EvictCron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	handlers := server.NewHandlers(sessions, server.Options{
		SessionHeader:  cfg.Server.SessionHeader,
		Horizons:       cfg.Forecast.Horizons,
		DefaultHorizon: cfg.Forecast.DefaultHorizon,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg.Server.Addr, handlers).Run(ctx); err != nil {
		return err
	}
	log.Println("[INFO] stockdash stopped")
	return nil
}

