package tide

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wavewatch/backend-go/internal/models"
	"github.com/wavewatch/backend-go/internal/observability"
	"github.com/wavewatch/backend-go/internal/station"
	"github.com/wavewatch/backend-go/pkg/http/client"
)

// Service reconciles NOAA tide predictions into beach-local series. For
// harmonic stations predictions are fetched directly; for subordinate
// stations they are fetched from the reference station and transformed with
// the published offsets. Subordinate stations have no fetch path of their
// own because NOAA publishes no independent series for them.
type Service struct {
	HttpClient  *client.Client
	Resolver    StationResolver
	SeriesCache CacheProvider
	Metrics     *observability.Metrics
}

func NewService(httpClient *client.Client, resolver StationResolver, seriesCache CacheProvider, metrics *observability.Metrics) *Service {
	return &Service{
		HttpClient:  httpClient,
		Resolver:    resolver,
		SeriesCache: seriesCache,
		Metrics:     metrics,
	}
}

// GetTideSeries accepts the date as a YYYY-MM-DD string. Any other form is
// rejected before use.
func (s *Service) GetTideSeries(ctx context.Context, beachName, dateStr string) (*models.TideSeries, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateStr, err)
	}
	return s.GetTideSeriesForDate(ctx, beachName, date)
}

// GetTideSeriesForDate accepts an already-structured date, normalized to
// its calendar day.
func (s *Service) GetTideSeriesForDate(ctx context.Context, beachName string, date time.Time) (*models.TideSeries, error) {
	stationID, ok := station.StationIDForBeach(beachName)
	if !ok {
		return nil, NewNoStationError(beachName)
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayStr := day.Format("2006-01-02")

	if s.SeriesCache != nil {
		record, err := s.SeriesCache.GetSeries(ctx, stationID, day)
		if err != nil {
			// Cache trouble never blocks the fetch path.
			log.Warn().Err(err).Str("station_id", stationID).Msg("Series cache read failed")
		} else if record != nil {
			log.Debug().Str("station_id", stationID).Str("date", dayStr).Msg("Cache HIT for tide series")
			return record.Series(), nil
		}
	}

	metadata, err := s.Resolver.Resolve(ctx, stationID)
	if err != nil {
		return nil, err
	}

	series, err := s.reconcile(ctx, metadata, day, dayStr)
	if err != nil {
		return nil, err
	}

	if s.SeriesCache != nil {
		record := models.TideSeriesRecord{
			StationID:   series.StationID,
			Date:        dayStr,
			ReferenceID: series.ReferenceID,
			StationName: series.StationName,
			Points:      series.Points,
		}
		if err := s.SeriesCache.SaveSeries(ctx, record); err != nil {
			log.Warn().Err(err).Str("station_id", stationID).Msg("Series cache write failed")
		}
	}

	return series, nil
}

func (s *Service) reconcile(ctx context.Context, metadata *models.StationMetadata, day time.Time, dayStr string) (*models.TideSeries, error) {
	if metadata.IsSubordinate() {
		referenceID := *metadata.ReferenceID

		predictions, err := s.fetchPredictions(ctx, referenceID, day)
		if err != nil {
			return nil, err
		}
		if len(predictions) == 0 {
			return nil, NewNoPredictionsError(referenceID, dayStr)
		}

		offsets := metadata.Offsets
		if offsets == nil {
			offsets = models.PassThroughOffsets()
		}

		points, err := reconcileSubordinate(predictions, offsets)
		if err != nil {
			return nil, NewUpstreamError("reconciling subordinate predictions", err)
		}

		return &models.TideSeries{
			StationID:   metadata.StationID,
			ReferenceID: &referenceID,
			StationName: fmt.Sprintf("Station %s (subordinate, ref: %s)", metadata.StationID, referenceID),
			Points:      points,
		}, nil
	}

	predictions, err := s.fetchPredictions(ctx, metadata.StationID, day)
	if err != nil {
		return nil, err
	}
	if len(predictions) == 0 {
		return nil, NewNoPredictionsError(metadata.StationID, dayStr)
	}

	points, err := reconcileHarmonic(predictions)
	if err != nil {
		return nil, NewUpstreamError("reconciling predictions", err)
	}

	return &models.TideSeries{
		StationID:   metadata.StationID,
		StationName: fmt.Sprintf("Station %s", metadata.StationID),
		Points:      points,
	}, nil
}

func (s *Service) fetchPredictions(ctx context.Context, stationID string, day time.Time) ([]models.NoaaPrediction, error) {
	dateStr := day.Format("20060102")

	resp, err := s.HttpClient.Get(ctx, fmt.Sprintf("/api/prod/datagetter"+
		"?product=predictions&application=NOS.COOPS.TAC.WL"+
		"&station=%s&begin_date=%s&end_date=%s"+
		"&datum=MLLW&interval=hilo&units=metric&time_zone=gmt&format=json",
		stationID, dateStr, dateStr))
	if err != nil {
		s.Metrics.CountUpstreamRequest("predictions", "error")
		return nil, NewUpstreamError("fetching predictions", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.Metrics.CountUpstreamRequest("predictions", "error")
		return nil, NewUpstreamError(
			fmt.Sprintf("unexpected status %d fetching predictions for station %s", resp.StatusCode, stationID), nil)
	}

	log.Debug().Msgf("Fetched predictions from noaa: station=%s date=%s", stationID, dateStr)

	var noaaResp models.NoaaResponse
	if err := json.Unmarshal(resp.Body, &noaaResp); err != nil {
		s.Metrics.CountUpstreamRequest("predictions", "error")
		return nil, NewUpstreamError("decoding predictions response", err)
	}

	s.Metrics.CountUpstreamRequest("predictions", "success")
	return noaaResp.Predictions, nil
}
