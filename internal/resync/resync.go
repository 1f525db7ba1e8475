// Package resync retries persisting events after the storage medium rejected a write.
package resync

import (
	"context"
	"time"

	"github.com/xlab/closer"
	"go.uber.org/zap"
)

const DefaultInterval = time.Minute

type flusher interface {
	Flush(ctx context.Context) (bool, error)
}

type Syncer struct {
	store    flusher
	logger   *zap.SugaredLogger
	interval time.Duration
}

func NewSyncer(store flusher, logger *zap.SugaredLogger, interval time.Duration) *Syncer {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Syncer{
		store:    store,
		logger:   logger,
		interval: interval,
	}
}

// Start blocks until ctx is done or the process closer fires.
func (s *Syncer) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	done := make(chan struct{})

	closer.Bind(func() {
		close(done)
	})
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sync(ctx)
		}
	}
}

func (s *Syncer) sync(ctx context.Context) {
	attempted, err := s.store.Flush(ctx)
	switch {
	case err != nil:
		s.logger.Warnw("Retrying event save failed", "err", err)
	case attempted:
		s.logger.Infow("Pending events saved")
	}
}
