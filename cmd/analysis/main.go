package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/wavewatch/backend-go/internal/analysis"
	"github.com/wavewatch/backend-go/internal/api"
	"github.com/wavewatch/backend-go/internal/config"
	"github.com/wavewatch/backend-go/internal/observability"
)

var (
	metrics   *observability.Metrics
	setupOnce sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		metrics = observability.NewMetrics(prometheus.DefaultRegisterer)
	})
}

type analysisRequest struct {
	AnalysisText string `json:"analysisText"`
}

// handleRequest extracts the best surf window from a narrative analysis
// body. A narrative with no recognizable window is a 200 with a null
// window; absence is a valid outcome, never an error.
func handleRequest(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req analysisRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return api.Error("invalid request body", http.StatusBadRequest)
	}

	window := analysis.ExtractBestWindow(req.AnalysisText)
	if window == nil {
		metrics.CountExtraction("no_window")
		log.Debug().Msg("No best window found in analysis text")
	} else {
		metrics.CountExtraction("window")
	}

	return api.Success(api.NewBestWindowResponse(window))
}

func main() {
	lambda.Start(handleRequest)
}
