package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wavewatch/backend-go/internal/api"
	"github.com/wavewatch/backend-go/internal/cache"
	"github.com/wavewatch/backend-go/internal/config"
	"github.com/wavewatch/backend-go/internal/observability"
	"github.com/wavewatch/backend-go/internal/station"
	"github.com/wavewatch/backend-go/internal/tide"
	"github.com/wavewatch/backend-go/pkg/http/client"
)

var (
	tideService tide.TideService
	setupOnce   sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		if cfg.Environment == "production" {
			log.Logger = zerolog.New(os.Stdout).
				With().
				Timestamp().
				Logger()
		}

		log.Info().Str("env", cfg.Environment).Msg("Environment")

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		httpClient := client.New(client.Options{
			BaseURL: cfg.NOAABaseURL,
			Timeout: cfg.HTTPTimeout,
		})

		cacheConfig := config.GetCacheConfig()

		resolver, err := station.NewResolver(httpClient, nil, metrics)
		if err != nil {
			log.Fatal().Err(err).Msg("Initializing station resolver")
		}

		var dynamoCache *cache.DynamoSeriesCache
		if cacheConfig.EnableDynamoCache {
			dynamoClient, err := cache.NewDynamoClient(context.Background())
			if err != nil {
				log.Fatal().Err(err).Msg("Initializing DynamoDB client")
			}
			dynamoCache = cache.NewDynamoSeriesCache(dynamoClient, cacheConfig, nil)
		}

		seriesCache, err := cache.NewTideSeriesCache(cacheConfig, dynamoCache, nil, metrics)
		if err != nil {
			log.Fatal().Err(err).Msg("Initializing series cache")
		}

		tideService = tide.NewService(httpClient, resolver, seriesCache, metrics)
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	log.Info().Msg("Handling tide series request")

	beach, dateStr, err := api.ParseBeachDate(params)
	if err != nil {
		return api.Error(err.Error(), http.StatusBadRequest)
	}

	series, err := tideService.GetTideSeries(ctx, beach, dateStr)
	if err != nil {
		return errorResponse(beach, err)
	}

	return api.Success(api.NewTideSeriesResponse(series, dateStr))
}

// errorResponse maps the tide error taxonomy to HTTP statuses. Everything
// upstream-shaped surfaces as "tide data unavailable" so the caller can
// degrade instead of failing the whole surf response.
func errorResponse(beach string, err error) (events.APIGatewayProxyResponse, error) {
	var noStation *tide.NoStationError
	if errors.As(err, &noStation) {
		return api.Error(err.Error(), http.StatusNotFound)
	}

	log.Warn().Err(err).Str("beach", beach).Msg("Tide data unavailable")
	return api.Error("tide data unavailable", http.StatusBadGateway)
}

func main() {
	lambda.Start(handleRequest)
}
