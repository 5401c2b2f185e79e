// Package scheduler runs the fixed-interval tick that advances the game
// session's progress meters. Ticks run on the scheduler's own goroutine;
// the session serializes them against HTTP commands internally.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// Tick is a job invoked at every interval with the current time.
type Tick func(ctx context.Context, now time.Time)

// Scheduler manages scheduled jobs
type Scheduler struct {
	quit chan struct{}
	wg   sync.WaitGroup
}

// New creates a new scheduler
func New() *Scheduler {
	return &Scheduler{
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval
func (s *Scheduler) Schedule(interval time.Duration, job Tick) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				job(context.Background(), now)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
