package resilience

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"moving/internal/core/domain/model/region"
	"moving/internal/core/ports"
)

// CachedDirectory serves the region list from memory and reloads it after ttl.
// When a reload fails and a previous list is held, the previous list is served.
type CachedDirectory struct {
	next   ports.RegionDirectory
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu       sync.RWMutex
	regions  region.List
	loadedAt time.Time
}

func NewCachedDirectory(next ports.RegionDirectory, ttl time.Duration, logger *slog.Logger) *CachedDirectory {
	return &CachedDirectory{
		next:   next,
		ttl:    ttl,
		now:    time.Now,
		logger: logger.With("component", "region_cache"),
	}
}

// ListAll returns a copy of the cached list, loading it on first use and when stale.
func (c *CachedDirectory) ListAll(ctx context.Context) (region.List, error) {
	c.mu.RLock()
	regions, fresh := c.regions, c.now().Sub(c.loadedAt) < c.ttl
	c.mu.RUnlock()

	if regions != nil && fresh {
		return slices.Clone(regions), nil
	}

	if err := c.Refresh(ctx); err != nil {
		if regions == nil {
			return nil, err
		}
		c.logger.WarnContext(ctx, "serving stale region list", "error", err)
		return slices.Clone(regions), nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.regions), nil
}

// Refresh reloads the list unconditionally.
func (c *CachedDirectory) Refresh(ctx context.Context) error {
	regions, err := c.next.ListAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.regions = regions
	c.loadedAt = c.now()
	return nil
}
