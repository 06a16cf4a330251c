package scheduler

import (
	"context"
	"sync"
	"time"

	"invoicesync/internal/logger"
	"invoicesync/internal/usecase"

	"github.com/rs/zerolog"
)

const (
	// startupSweepWindow covers Notion edits made while the service was down.
	startupSweepWindow = 72 * time.Hour

	// periodicSweepWindow bounds each recurring Notion sweep; the interval is
	// far shorter, so consecutive sweeps overlap rather than leave gaps.
	periodicSweepWindow = time.Hour
)

// Scheduler drives the recurring reconciliation passes: a Stripe-side batch
// on every tick plus a Notion edit sweep. Start launches one supervised
// goroutine; Stop cancels any in-flight pass and waits for it to exit.
type Scheduler struct {
	Sync     usecase.ISyncUseCase
	Interval time.Duration
	DaysBack int

	ticker *time.Ticker
	cancel context.CancelFunc
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
	log    zerolog.Logger
}

func NewScheduler(sync usecase.ISyncUseCase, interval time.Duration, daysBack int) *Scheduler {
	return &Scheduler{
		Sync:     sync,
		Interval: interval,
		DaysBack: daysBack,
		log:      logger.WithComponent("scheduler"),
	}
}

// Start begins the background loop. The first pass runs immediately and uses
// the wider startup window so edits made during downtime are not lost.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.stop = make(chan struct{})
	s.ticker = time.NewTicker(s.Interval)
	s.wg.Add(1)

	go s.run(ctx, s.ticker, s.stop)

	s.log.Info().Dur("interval", s.Interval).Int("days_back", s.DaysBack).Msg("scheduler started")
}

// Stop halts the loop and blocks until the current pass finishes.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker == nil {
		return
	}

	s.ticker.Stop()
	s.cancel()
	close(s.stop)
	s.wg.Wait()
	s.ticker = nil
	s.log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, ticker *time.Ticker, stop <-chan struct{}) {
	defer s.wg.Done()

	s.pass(ctx, startupSweepWindow)

	for {
		select {
		case <-ticker.C:
			s.pass(ctx, periodicSweepWindow)
		case <-stop:
			return
		}
	}
}

// pass runs one full reconciliation round. Failures are counted and logged
// inside the engine; the loop itself never stops on them.
func (s *Scheduler) pass(ctx context.Context, sweepWindow time.Duration) {
	if ctx.Err() != nil {
		return
	}

	stats := s.Sync.RunBackgroundSync(ctx, s.DaysBack)
	edits := s.Sync.SyncRecentNotionEdits(ctx, sweepWindow)

	s.log.Info().
		Int("total", stats.Total).
		Int("synced", stats.Synced).
		Int("failed", stats.Failed).
		Int("unchanged", stats.Unchanged).
		Int("deleted", stats.Deleted).
		Int("notion_edits", edits).
		Dur("sweep_window", sweepWindow).
		Msg("reconciliation pass completed")
}
