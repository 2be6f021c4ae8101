package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/wavewatch/backend-go/internal/config"
	"github.com/wavewatch/backend-go/internal/models"
)

// DynamoSeriesCache persists reconciled tide series in DynamoDB keyed by
// station id and date.
type DynamoSeriesCache struct {
	client DynamoDBClient
	config *config.CacheConfig
	clock  clockwork.Clock
}

func NewDynamoSeriesCache(client DynamoDBClient, cacheConfig *config.CacheConfig, clock clockwork.Clock) *DynamoSeriesCache {
	if cacheConfig == nil {
		cacheConfig = config.GetCacheConfig()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DynamoSeriesCache{
		client: client,
		config: cacheConfig,
		clock:  clock,
	}
}

// GetSeries retrieves a cached series record, or nil on a miss or expired
// entry.
func (c *DynamoSeriesCache) GetSeries(ctx context.Context, stationID string, date time.Time) (*models.TideSeriesRecord, error) {
	dateStr := date.Format("2006-01-02")

	input := &dynamodb.GetItemInput{
		TableName: aws.String(c.config.DynamoTableName),
		Key: map[string]types.AttributeValue{
			"stationId": &types.AttributeValueMemberS{Value: stationID},
			"date":      &types.AttributeValueMemberS{Value: dateStr},
		},
	}

	result, err := c.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("getting series from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var record models.TideSeriesRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling series record: %w", err)
	}

	if c.clock.Now().Unix() >= record.TTL {
		log.Debug().
			Str("station_id", stationID).
			Str("date", dateStr).
			Msg("Cached series expired")
		return nil, nil
	}

	return &record, nil
}

// SaveSeries writes a series record with a fresh TTL.
func (c *DynamoSeriesCache) SaveSeries(ctx context.Context, record models.TideSeriesRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid series record: %w", err)
	}

	now := c.clock.Now()
	record.LastUpdated = now.Unix()
	record.TTL = now.Add(c.config.GetSeriesDynamoTTL()).Unix()

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshaling series record: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(c.config.DynamoTableName),
		Item:      item,
	}

	if _, err := c.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("putting series in DynamoDB: %w", err)
	}

	log.Debug().
		Str("station_id", record.StationID).
		Str("date", record.Date).
		Msg("Saved series to cache")

	return nil
}
