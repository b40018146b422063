package sweeper

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/pkg/clock"
)

type HoldExpirer interface {
	ExpireStaleHolds(ctx context.Context, now time.Time) (int, error)
}

// HoldSweeper deletes expired holds on a fixed interval. Holds are also
// expired lazily on every write to their partition, so a missed tick only
// delays cleanup of idle partitions.
type HoldSweeper struct {
	expirer  HoldExpirer
	clk      clock.Clock
	interval time.Duration
	logger   *slog.Logger
}

func NewHoldSweeper(expirer HoldExpirer, clk clock.Clock, interval time.Duration, logger *slog.Logger) *HoldSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &HoldSweeper{
		expirer:  expirer,
		clk:      clk,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled.
func (s *HoldSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

func (s *HoldSweeper) SweepOnce(ctx context.Context) int {
	n, err := s.expirer.ExpireStaleHolds(ctx, s.clk.Now())
	if err != nil {
		s.logger.Error("hold sweep failed", "error", err)
		return 0
	}
	if n > 0 {
		s.logger.Info("expired holds swept", "count", n)
	}
	return n
}
