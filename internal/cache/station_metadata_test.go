package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavewatch/backend-go/internal/config"
	"github.com/wavewatch/backend-go/internal/models"
)

func metadataCacheConfig() *config.CacheConfig {
	return &config.CacheConfig{
		StationMetadataLRUSize: 10,
		SeriesLRUSize:          10,
		SeriesLRUTTLMinutes:    60,
		SeriesDynamoTTLDays:    2,
		DynamoTableName:        "test-table",
	}
}

func TestStationMetadataCacheGetSet(t *testing.T) {
	cache, err := NewStationMetadataCache(metadataCacheConfig(), clockwork.NewFakeClock(), nil)
	require.NoError(t, err)

	assert.Nil(t, cache.Get("9413745"))

	metadata := &models.StationMetadata{
		StationID: "9413745",
		Kind:      models.StationKindHarmonic,
	}
	cache.Set(metadata)

	assert.Equal(t, metadata, cache.Get("9413745"))
}

func TestStationMetadataCacheNeverExpiresByDefault(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache, err := NewStationMetadataCache(metadataCacheConfig(), clock, nil)
	require.NoError(t, err)

	cache.Set(&models.StationMetadata{StationID: "9413745", Kind: models.StationKindHarmonic})

	clock.Advance(365 * 24 * time.Hour)
	assert.NotNil(t, cache.Get("9413745"))
}

func TestStationMetadataCacheTTLExpiry(t *testing.T) {
	cfg := metadataCacheConfig()
	cfg.StationMetadataTTLMinutes = 30

	clock := clockwork.NewFakeClock()
	cache, err := NewStationMetadataCache(cfg, clock, nil)
	require.NoError(t, err)

	cache.Set(&models.StationMetadata{StationID: "9413745", Kind: models.StationKindHarmonic})

	clock.Advance(29 * time.Minute)
	assert.NotNil(t, cache.Get("9413745"))

	clock.Advance(2 * time.Minute)
	assert.Nil(t, cache.Get("9413745"))
}

func TestStationMetadataCacheEviction(t *testing.T) {
	cfg := metadataCacheConfig()
	cfg.StationMetadataLRUSize = 2

	cache, err := NewStationMetadataCache(cfg, clockwork.NewFakeClock(), nil)
	require.NoError(t, err)

	cache.Set(&models.StationMetadata{StationID: "1", Kind: models.StationKindHarmonic})
	cache.Set(&models.StationMetadata{StationID: "2", Kind: models.StationKindHarmonic})
	cache.Set(&models.StationMetadata{StationID: "3", Kind: models.StationKindHarmonic})

	assert.Nil(t, cache.Get("1"))
	assert.NotNil(t, cache.Get("2"))
	assert.NotNil(t, cache.Get("3"))
}
