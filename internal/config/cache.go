package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheConfig holds all cache-related configuration
type CacheConfig struct {
	// Station metadata memoization settings. A TTL of zero keeps entries
	// for the lifetime of the process.
	StationMetadataLRUSize    int
	StationMetadataTTLMinutes int

	// Reconciled tide series cache settings
	SeriesLRUSize       int
	SeriesLRUTTLMinutes int
	SeriesDynamoTTLDays int

	EnableDynamoCache bool
	DynamoTableName   string
}

const (
	defaultStationMetadataLRUSize = 500
	defaultSeriesLRUSize          = 1000
	defaultSeriesTTLMinutes       = 60
	defaultSeriesDynamoTTLDays    = 2
	defaultDynamoTableName        = "tide-series-cache"
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	cfg := &CacheConfig{
		StationMetadataLRUSize:    getEnvInt("CACHE_STATION_METADATA_LRU_SIZE", defaultStationMetadataLRUSize),
		StationMetadataTTLMinutes: getEnvInt("CACHE_STATION_METADATA_TTL_MINUTES", 0),
		SeriesLRUSize:             getEnvInt("CACHE_SERIES_LRU_SIZE", defaultSeriesLRUSize),
		SeriesLRUTTLMinutes:       getEnvInt("CACHE_SERIES_LRU_TTL_MINUTES", defaultSeriesTTLMinutes),
		SeriesDynamoTTLDays:       getEnvInt("CACHE_SERIES_DYNAMO_TTL_DAYS", defaultSeriesDynamoTTLDays),
		EnableDynamoCache:         getEnvBool("CACHE_ENABLE_DYNAMO", false),
		DynamoTableName:           getEnvOrDefault("CACHE_DYNAMO_TABLE", defaultDynamoTableName),
	}

	log.Debug().
		Int("StationMetadataLRUSize", cfg.StationMetadataLRUSize).
		Int("StationMetadataTTLMinutes", cfg.StationMetadataTTLMinutes).
		Int("SeriesLRUSize", cfg.SeriesLRUSize).
		Int("SeriesLRUTTLMinutes", cfg.SeriesLRUTTLMinutes).
		Int("SeriesDynamoTTLDays", cfg.SeriesDynamoTTLDays).
		Bool("EnableDynamoCache", cfg.EnableDynamoCache).
		Str("DynamoTableName", cfg.DynamoTableName).
		Msg("Cache configuration loaded")

	return cfg
}

func (c *CacheConfig) GetStationMetadataTTL() time.Duration {
	return time.Duration(c.StationMetadataTTLMinutes) * time.Minute
}

func (c *CacheConfig) GetSeriesLRUTTL() time.Duration {
	return time.Duration(c.SeriesLRUTTLMinutes) * time.Minute
}

func (c *CacheConfig) GetSeriesDynamoTTL() time.Duration {
	return time.Duration(c.SeriesDynamoTTLDays) * 24 * time.Hour
}

// Helper functions to get environment variables with defaults
func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
