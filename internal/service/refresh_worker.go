package service

import (
	"context"
	"log"
	"time"

	"github.com/justintdct/CineVault/cinevault-go/internal/metrics"
	"github.com/justintdct/CineVault/cinevault-go/internal/store"
)

// RefreshWorker is the periodic background job that advances stats for every
// catalog entry. Each tick sweeps the full catalog; a failure on one id is
// logged and must not stop the rest of the sweep.
type RefreshWorker struct {
	catalog  *store.Catalog
	stats    *store.StatsStore
	cache    *CacheService
	interval time.Duration
	stopCh   chan struct{}
}

// NewRefreshWorker creates a worker that ticks every interval.
func NewRefreshWorker(catalog *store.Catalog, stats *store.StatsStore, cache *CacheService, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		catalog:  catalog,
		stats:    stats,
		cache:    cache,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic refresh loop. It runs one sweep immediately,
// then every interval, until the context is cancelled or Stop is called.
func (w *RefreshWorker) Start(ctx context.Context) {
	log.Printf("refresh-worker: starting (interval=%s)", w.interval)

	// Run once immediately on startup
	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("refresh-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("refresh-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *RefreshWorker) Stop() {
	close(w.stopCh)
}

// tick runs one sweep: refresh stats for every catalog entry.
func (w *RefreshWorker) tick(ctx context.Context) {
	start := time.Now()

	refreshed, failed := w.sweep()

	if w.cache != nil {
		if err := w.cache.InvalidateRankings(ctx); err != nil {
			log.Printf("refresh-worker: cache invalidate error: %v", err)
		}
	}

	elapsed := time.Since(start)
	metrics.Metrics.RefreshSweepDuration.Observe(elapsed.Seconds())
	log.Printf("refresh-worker: sweep complete — %d refreshed, %d failed (%s)",
		refreshed, failed, elapsed.Round(time.Millisecond))
}

// sweep refreshes every entry, isolating per-id failures.
func (w *RefreshWorker) sweep() (refreshed, failed int) {
	for _, content := range w.catalog.All() {
		if _, err := w.stats.Refresh(content.ID); err != nil {
			log.Printf("refresh-worker: refresh error for %s: %v", content.ID, err)
			metrics.Metrics.RefreshTotal.WithLabelValues("error").Inc()
			failed++
			continue
		}
		metrics.Metrics.RefreshTotal.WithLabelValues("ok").Inc()
		refreshed++
	}
	return refreshed, failed
}
