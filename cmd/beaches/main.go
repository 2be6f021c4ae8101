package main

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/wavewatch/backend-go/internal/api"
	"github.com/wavewatch/backend-go/internal/config"
	"github.com/wavewatch/backend-go/internal/station"
)

var setupOnce sync.Once

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()
	})
}

// handleRequest lists the beaches that have a tide station mapping. The
// table is static, so the handler takes no parameters.
func handleRequest(_ context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Debug().Msg("Handling beaches request")
	return api.Success(api.NewBeachesResponse(station.Beaches()))
}

func main() {
	lambda.Start(handleRequest)
}
