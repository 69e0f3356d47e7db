// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package service

import (
	"context"
	"sync"
	"time"

	"github.com/msavelyeva/nutrikeep/internal/logger"
)

// refreshMaxAge is how old a cached product must be before the background
// job re-fetches it.
const refreshMaxAge = 7 * 24 * time.Hour

type cacheRefreshJob struct {
	catalog CatalogService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCacheRefreshJob creates a cacheRefreshJob that calls
// catalog.RefreshStale on a ticker. The job is idle until Start is called.
func NewCacheRefreshJob(catalog CatalogService) CacheRefreshJob {
	return &cacheRefreshJob{catalog: catalog}
}

// Start implements CacheRefreshJob. It stops any previously running job,
// then launches a background goroutine that refreshes stale products every
// interval. If interval is zero or negative it defaults to 24 hours. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *cacheRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				refreshed, err := j.catalog.RefreshStale(jobCtx, refreshMaxAge)
				if err != nil {
					logger.FromContext(jobCtx).Err(err).
						Str("func", "cacheRefreshJob").
						Msg("background product refresh failed")
					continue
				}
				if refreshed > 0 {
					logger.FromContext(jobCtx).Info().
						Int("refreshed", refreshed).
						Msg("refreshed stale cached products")
				}
			}
		}
	}()
}

// Stop implements CacheRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *cacheRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
