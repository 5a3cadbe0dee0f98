package services

import (
	"context"
	"time"

	"github.com/campusops/ssis/internal/pkg/logger"
)

// BlocklistSweeper periodically removes blocklist entries older than the
// retention window. Entries past the access token lifetime no longer gate
// anything, since the token itself is rejected as expired.
type BlocklistSweeper struct {
	blocklistRepo BlocklistRepo
	retention     time.Duration
	interval      time.Duration
}

// NewBlocklistSweeper creates a new sweeper instance
func NewBlocklistSweeper(blocklistRepo BlocklistRepo, retention, interval time.Duration) *BlocklistSweeper {
	return &BlocklistSweeper{
		blocklistRepo: blocklistRepo,
		retention:     retention,
		interval:      interval,
	}
}

// Run sweeps on the configured interval until the context is canceled.
// It performs an initial sweep immediately so restarts do not leave stale
// entries sitting for a full interval.
func (s *BlocklistSweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Blocklist sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *BlocklistSweeper) sweep(ctx context.Context) {
	removed, err := s.blocklistRepo.Cleanup(ctx, s.retention)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Error().Err(err).Msg("Blocklist sweep failed")
		return
	}
	if removed > 0 {
		logger.Info().Int64("removed", removed).Msg("Swept expired blocklist entries")
	}
}
