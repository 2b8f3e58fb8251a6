package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Sweeper drops expired entries and reports how many remain.
type Sweeper interface {
	Sweep() int
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron  *cron.Cron
	Cache Sweeper
}

// NewScheduler creates a new Scheduler.
func NewScheduler(cache Sweeper) *Scheduler {
	return &Scheduler{
		Cron:  cron.New(cron.WithSeconds()),
		Cache: cache,
	}
}

// RegisterAll registers the cache sweep task.
func (s *Scheduler) RegisterAll(sweepCron string) error {
	if _, err := s.Cron.AddFunc(sweepCron, s.sweepTask); err != nil {
		return fmt.Errorf("register cache sweep task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info("scheduler stopped")
}

// SweepNow runs the cache sweep immediately and returns the live entry count.
func (s *Scheduler) SweepNow() int {
	left := s.Cache.Sweep()
	log.WithField("entries", left).Debug("cache swept")
	return left
}

func (s *Scheduler) sweepTask() {
	s.SweepNow()
}
