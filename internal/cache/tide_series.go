package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"github.com/wavewatch/backend-go/internal/config"
	"github.com/wavewatch/backend-go/internal/models"
	"github.com/wavewatch/backend-go/internal/observability"
)

type seriesEntry struct {
	data      *models.TideSeriesRecord
	expiresAt time.Time
}

// TideSeriesCache layers a short-lived in-process LRU over an optional
// DynamoDB store. The dynamo layer may be nil, in which case only the LRU
// applies.
type TideSeriesCache struct {
	entries *lru.Cache[string, seriesEntry]
	dynamo  *DynamoSeriesCache
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
}

func NewTideSeriesCache(cfg *config.CacheConfig, dynamo *DynamoSeriesCache, clock clockwork.Clock, metrics *observability.Metrics) (*TideSeriesCache, error) {
	if cfg == nil {
		cfg = config.GetCacheConfig()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	entries, err := lru.New[string, seriesEntry](cfg.SeriesLRUSize)
	if err != nil {
		return nil, fmt.Errorf("creating series cache: %w", err)
	}

	return &TideSeriesCache{
		entries: entries,
		dynamo:  dynamo,
		ttl:     cfg.GetSeriesLRUTTL(),
		clock:   clock,
		metrics: metrics,
	}, nil
}

func seriesKey(stationID string, date time.Time) string {
	return fmt.Sprintf("%s:%s", stationID, date.Format("2006-01-02"))
}

// GetSeries tries the LRU first, then DynamoDB. A miss returns (nil, nil).
func (c *TideSeriesCache) GetSeries(ctx context.Context, stationID string, date time.Time) (*models.TideSeriesRecord, error) {
	key := seriesKey(stationID, date)

	if entry, ok := c.entries.Get(key); ok {
		if c.clock.Now().Before(entry.expiresAt) {
			c.metrics.CountCacheLookup("series_lru", "hit")
			return entry.data, nil
		}
		c.entries.Remove(key)
	}
	c.metrics.CountCacheLookup("series_lru", "miss")

	if c.dynamo == nil {
		return nil, nil
	}

	record, err := c.dynamo.GetSeries(ctx, stationID, date)
	if err != nil {
		return nil, fmt.Errorf("getting series from persistent cache: %w", err)
	}

	if record == nil {
		c.metrics.CountCacheLookup("series_dynamo", "miss")
		return nil, nil
	}

	c.metrics.CountCacheLookup("series_dynamo", "hit")
	c.entries.Add(key, seriesEntry{
		data:      record,
		expiresAt: c.clock.Now().Add(c.ttl),
	})
	return record, nil
}

// SaveSeries writes to the LRU and, when configured, to DynamoDB.
func (c *TideSeriesCache) SaveSeries(ctx context.Context, record models.TideSeriesRecord) error {
	date, err := time.Parse("2006-01-02", record.Date)
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}

	recordCopy := record
	c.entries.Add(seriesKey(record.StationID, date), seriesEntry{
		data:      &recordCopy,
		expiresAt: c.clock.Now().Add(c.ttl),
	})

	if c.dynamo == nil {
		return nil
	}

	if err := c.dynamo.SaveSeries(ctx, record); err != nil {
		return fmt.Errorf("saving series to persistent cache: %w", err)
	}

	return nil
}
