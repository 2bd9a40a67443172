// internal/service/retention.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Shadab-Akram/FlashCard/internal/store"
)

// RetentionSweeper deletes sessions older than a TTL so session state does
// not grow for the whole process lifetime. Flashcards are left alone; the
// store's lenient id lookups depend on them staying around.
type RetentionSweeper struct {
	store    store.Store
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewRetentionSweeper(s store.Store, ttl time.Duration, logger *slog.Logger) *RetentionSweeper {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return &RetentionSweeper{
		store:    s,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps on a ticker until ctx is cancelled. Call it in its own
// goroutine.
func (r *RetentionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *RetentionSweeper) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-r.ttl)
	deleted, err := r.store.DeleteSessionsBefore(ctx, cutoff)
	if err != nil {
		r.logger.Error("session retention sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		r.logger.Info("expired sessions removed", "count", deleted)
	}
}
