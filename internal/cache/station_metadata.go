package cache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"github.com/wavewatch/backend-go/internal/config"
	"github.com/wavewatch/backend-go/internal/models"
	"github.com/wavewatch/backend-go/internal/observability"
)

type metadataEntry struct {
	data      *models.StationMetadata
	expiresAt time.Time // zero value means the entry never expires
}

// StationMetadataCache memoizes station topology lookups for the lifetime
// of the process. Entries are idempotent, so a duplicate fetch under
// concurrency is wasted work, not corruption; the LRU is safe for
// concurrent use. TTL defaults to zero (never expire) and is driven by the
// injected clock so staleness tolerance can change without touching
// callers.
type StationMetadataCache struct {
	entries *lru.Cache[string, metadataEntry]
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
}

func NewStationMetadataCache(cfg *config.CacheConfig, clock clockwork.Clock, metrics *observability.Metrics) (*StationMetadataCache, error) {
	if cfg == nil {
		cfg = config.GetCacheConfig()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	entries, err := lru.New[string, metadataEntry](cfg.StationMetadataLRUSize)
	if err != nil {
		return nil, fmt.Errorf("creating station metadata cache: %w", err)
	}

	return &StationMetadataCache{
		entries: entries,
		ttl:     cfg.GetStationMetadataTTL(),
		clock:   clock,
		metrics: metrics,
	}, nil
}

func (c *StationMetadataCache) Get(stationID string) *models.StationMetadata {
	entry, ok := c.entries.Get(stationID)
	if !ok {
		c.metrics.CountCacheLookup("station_metadata", "miss")
		return nil
	}

	if !entry.expiresAt.IsZero() && c.clock.Now().After(entry.expiresAt) {
		c.entries.Remove(stationID)
		c.metrics.CountCacheLookup("station_metadata", "miss")
		return nil
	}

	c.metrics.CountCacheLookup("station_metadata", "hit")
	return entry.data
}

func (c *StationMetadataCache) Set(metadata *models.StationMetadata) {
	entry := metadataEntry{data: metadata}
	if c.ttl > 0 {
		entry.expiresAt = c.clock.Now().Add(c.ttl)
	}
	c.entries.Add(metadata.StationID, entry)
}
