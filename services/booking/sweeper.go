package booking

import (
	"context"
	"sync"
	"time"

	reservationRepo "roomly/database/repository/reservation"
	"roomly/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper promotes reservations whose end time has elapsed to the terminal
// "passed" status. Sweep is idempotent: a second run with no intervening
// writes transitions zero rows.
type Sweeper struct {
	Repo reservationRepo.ReservationRepository
}

// Sweep runs one pass and returns how many reservations were transitioned.
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	count, err := s.Repo.BulkMarkPassed(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		utils.GetLogger().Info("swept elapsed reservations", zap.Int64("count", count))
	}
	return count, nil
}

// SweepScheduler owns the periodic sweep trigger. Start and Stop are
// idempotent on the object itself, so the bootstrap can call them without
// tracking whether the scheduler is already running.
type SweepScheduler struct {
	sweeper  *Sweeper
	interval time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
}

// NewSweepScheduler builds a scheduler firing every interval (hourly or finer
// is expected; sub-second intervals are clamped to one second).
func NewSweepScheduler(sweeper *Sweeper, interval time.Duration) *SweepScheduler {
	if interval < time.Second {
		interval = time.Second
	}
	return &SweepScheduler{
		sweeper:  sweeper,
		interval: interval,
	}
}

// Start begins periodic sweeping. Calling Start on a running scheduler is a
// no-op.
func (s *SweepScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}

	s.cron = cron.New()
	s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.sweeper.Sweep(ctx); err != nil {
			utils.GetLogger().Error("periodic sweep failed", zap.Error(err))
		}
	}))
	s.cron.Start()
	s.started = true

	utils.GetLogger().Info("sweep scheduler started", zap.Duration("interval", s.interval))
}

// Stop halts periodic sweeping and waits for an in-flight run to finish.
// Calling Stop on a stopped scheduler is a no-op.
func (s *SweepScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = nil
	s.started = false

	utils.GetLogger().Info("sweep scheduler stopped")
}

// Running reports whether the scheduler is currently active.
func (s *SweepScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}
