package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Schmolo/nhplus-umsetzung/internal/clock"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
)

// RetentionSweeper periodically erases retention-locked records whose lock
// expiry has passed. One sweep pass visits every lock store in order; a
// failure in one store or on one record never stops the rest of the pass.
//
// A record is erased only when the current date is strictly after its expiry
// date — a record expiring on 2030-01-01 survives a sweep on 2030-01-01 and
// is deleted by the first sweep on or after 2030-01-02.
type RetentionSweeper struct {
	stores   []store.LockStore
	clock    clock.Clock
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRetentionSweeper constructs a sweeper over the given lock stores.
// interval is the pause between sweep passes; the first pass runs
// immediately on Start.
func NewRetentionSweeper(stores []store.LockStore, clk clock.Clock, interval time.Duration, log *logger.Logger) *RetentionSweeper {
	return &RetentionSweeper{
		stores:   stores,
		clock:    clk,
		interval: interval,
		logger:   log,
	}
}

// Start implements [Worker]. It launches the sweep loop in a goroutine: one
// immediate pass, then one pass per interval until the context is cancelled
// or Stop is called.
func (s *RetentionSweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	// Cancellation terminates the loop only. Each pass runs on a detached
	// context so an in-flight delete finishes instead of being aborted
	// mid-statement during shutdown.
	passCtx := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.Sweep(passCtx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Str("func", "Start").Msg("retention sweeper stopped")
				return
			case <-ticker.C:
				s.Sweep(passCtx)
			}
		}
	}()

	s.logger.Info().Str("func", "Start").Dur("interval", s.interval).Msg("retention sweeper started")
}

// Stop implements [Worker]. It cancels the sweep loop and blocks until the
// in-flight pass, if any, has finished.
func (s *RetentionSweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Sweep runs one full pass over all lock stores. Exposed so the server can
// trigger an out-of-schedule pass and so tests can drive the sweeper without
// the ticker.
func (s *RetentionSweeper) Sweep(ctx context.Context) {
	today := clock.Date(s.clock.Now())

	for _, lockStore := range s.stores {
		s.sweepKind(ctx, lockStore, today)
	}
}

// sweepKind erases every expired record of one kind. Errors are logged and
// skipped so a single bad record cannot shield the remaining ones.
func (s *RetentionSweeper) sweepKind(ctx context.Context, lockStore store.LockStore, today time.Time) {
	kind := lockStore.Kind()

	locked, err := lockStore.ListLocked(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "sweepKind").Str("kind", kind).Msg("listing locked records failed, skipping kind this pass")
		return
	}

	var deleted, skipped int
	for _, record := range locked {
		if !today.After(clock.Date(record.LockExpiry)) {
			continue
		}

		if err := lockStore.DeleteByID(ctx, record.ID); err != nil {
			skipped++
			s.logger.Err(err).Str("func", "sweepKind").Str("kind", kind).Int64("id", record.ID).Msg("deleting expired record failed")
			continue
		}
		deleted++
	}

	if deleted > 0 || skipped > 0 {
		s.logger.Info().Str("func", "sweepKind").Str("kind", kind).Int("deleted", deleted).Int("failed", skipped).Msg("sweep pass finished")
	}
}
