package scheduler

import (
	"fmt"
	"log"

	"StockForecast/internal/session"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the session housekeeping jobs.
type Scheduler struct {
	Cron     *cron.Cron
	Sessions *session.Manager
}

// NewScheduler creates a new Scheduler. Specs use the six-field format with seconds.
func NewScheduler(sessions *session.Manager) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Sessions: sessions,
	}
}

// RegisterAll registers the day rollover and idle eviction tasks.
func (s *Scheduler) RegisterAll(rolloverCron, evictCron string) error {
	if _, err := s.Cron.AddFunc(rolloverCron, s.rolloverTask); err != nil {
		return fmt.Errorf("register rollover task: %w", err)
	}
	if _, err := s.Cron.AddFunc(evictCron, s.evictTask); err != nil {
		return fmt.Errorf("register evict task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunRolloverNow executes the rollover task immediately.
func (s *Scheduler) RunRolloverNow() int {
	return s.rollover()
}

func (s *Scheduler) rolloverTask() { s.rollover() }

func (s *Scheduler) rollover() int {
	log.Println("[DEBUG] running day rollover")
	return s.Sessions.Rollover(s.Sessions.Now())
}

func (s *Scheduler) evictTask() {
	log.Println("[DEBUG] running idle session eviction")
	s.Sessions.EvictIdle()
}
