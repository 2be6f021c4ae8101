package station

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/wavewatch/backend-go/internal/cache"
	"github.com/wavewatch/backend-go/internal/models"
	"github.com/wavewatch/backend-go/internal/observability"
	"github.com/wavewatch/backend-go/pkg/http/client"
)

// LookupError indicates the station metadata service could not be reached
// or answered with a non-success status. Callers must treat tide data for
// the station as unavailable; no fallback station is ever fabricated.
type LookupError struct {
	StationID string
	Err       error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("station metadata lookup failed for %s: %v", e.StationID, e.Err)
	}
	return fmt.Sprintf("station metadata lookup failed for %s", e.StationID)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Resolver resolves a station id to its topology metadata: harmonic or
// subordinate, and for subordinate stations the reference station and
// prediction offsets. Results are memoized for the process lifetime.
type Resolver struct {
	httpClient *client.Client
	cache      *cache.StationMetadataCache
	metrics    *observability.Metrics
}

func NewResolver(httpClient *client.Client, metadataCache *cache.StationMetadataCache, metrics *observability.Metrics) (*Resolver, error) {
	if metadataCache == nil {
		var err error
		metadataCache, err = cache.NewStationMetadataCache(nil, nil, metrics)
		if err != nil {
			return nil, err
		}
	}
	return &Resolver{
		httpClient: httpClient,
		cache:      metadataCache,
		metrics:    metrics,
	}, nil
}

// mdapi wire shapes
type noaaStationInfo struct {
	Type            string  `json:"type"`
	ReferenceID     *string `json:"reference_id"`
	TidePredOffsets *struct {
		Self string `json:"self"`
	} `json:"tidepredoffsets"`
}

type noaaStationMetadataResponse struct {
	Stations []noaaStationInfo `json:"stations"`
}

type noaaOffsetsResponse struct {
	TimeOffsetHighTide   int      `json:"timeOffsetHighTide"`
	TimeOffsetLowTide    int      `json:"timeOffsetLowTide"`
	HeightOffsetHighTide *float64 `json:"heightOffsetHighTide"`
	HeightOffsetLowTide  *float64 `json:"heightOffsetLowTide"`
}

// Resolve returns the memoized metadata when present, otherwise fetches it
// from the NOAA metadata API and populates the cache.
func (r *Resolver) Resolve(ctx context.Context, stationID string) (*models.StationMetadata, error) {
	if cached := r.cache.Get(stationID); cached != nil {
		log.Debug().Str("station_id", stationID).Msg("Cache HIT for station metadata")
		return cached, nil
	}
	log.Debug().Str("station_id", stationID).Msg("Cache MISS for station metadata, calling noaa API")

	info, err := r.fetchStationInfo(ctx, stationID)
	if err != nil {
		return nil, err
	}

	metadata := r.classify(ctx, stationID, info)
	r.cache.Set(metadata)

	log.Trace().
		Str("station_id", stationID).
		Str("kind", string(metadata.Kind)).
		Msg("Resolved station topology")

	return metadata, nil
}

func (r *Resolver) fetchStationInfo(ctx context.Context, stationID string) (*noaaStationInfo, error) {
	resp, err := r.httpClient.Get(ctx, fmt.Sprintf("/mdapi/prod/webapi/stations/%s.json", stationID))
	if err != nil {
		r.metrics.CountUpstreamRequest("metadata", "error")
		return nil, &LookupError{StationID: stationID, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		r.metrics.CountUpstreamRequest("metadata", "error")
		return nil, &LookupError{
			StationID: stationID,
			Err:       fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var mdResp noaaStationMetadataResponse
	if err := json.Unmarshal(resp.Body, &mdResp); err != nil {
		r.metrics.CountUpstreamRequest("metadata", "error")
		return nil, &LookupError{StationID: stationID, Err: fmt.Errorf("decoding response: %w", err)}
	}

	if len(mdResp.Stations) == 0 {
		r.metrics.CountUpstreamRequest("metadata", "error")
		return nil, &LookupError{StationID: stationID, Err: fmt.Errorf("no station record returned")}
	}

	r.metrics.CountUpstreamRequest("metadata", "success")
	return &mdResp.Stations[0], nil
}

// classify maps a metadata record to a topology. Only "S" with a reference
// id counts as subordinate; everything else is treated as harmonic, the
// only other recognized topology.
func (r *Resolver) classify(ctx context.Context, stationID string, info *noaaStationInfo) *models.StationMetadata {
	if info.Type != string(models.StationKindSubordinate) || info.ReferenceID == nil || *info.ReferenceID == "" {
		return &models.StationMetadata{
			StationID: stationID,
			Kind:      models.StationKindHarmonic,
		}
	}

	return &models.StationMetadata{
		StationID:   stationID,
		Kind:        models.StationKindSubordinate,
		ReferenceID: info.ReferenceID,
		Offsets:     r.fetchOffsets(ctx, stationID, info),
	}
}

// fetchOffsets retrieves the numeric offsets for a subordinate station. On
// any failure it degrades to pass-through offsets rather than failing the
// resolution.
func (r *Resolver) fetchOffsets(ctx context.Context, stationID string, info *noaaStationInfo) *models.TideOffsets {
	if info.TidePredOffsets == nil || info.TidePredOffsets.Self == "" {
		log.Warn().Str("station_id", stationID).Msg("Subordinate station has no offsets link, using pass-through offsets")
		return models.PassThroughOffsets()
	}

	resp, err := r.httpClient.Get(ctx, info.TidePredOffsets.Self)
	if err != nil || resp.StatusCode != http.StatusOK {
		r.metrics.CountUpstreamRequest("offsets", "error")
		log.Warn().
			Str("station_id", stationID).
			Err(err).
			Msg("Could not fetch tide offsets, using pass-through offsets")
		return models.PassThroughOffsets()
	}

	var offsetsResp noaaOffsetsResponse
	if err := json.Unmarshal(resp.Body, &offsetsResp); err != nil {
		r.metrics.CountUpstreamRequest("offsets", "error")
		log.Warn().
			Str("station_id", stationID).
			Err(err).
			Msg("Could not decode tide offsets, using pass-through offsets")
		return models.PassThroughOffsets()
	}

	r.metrics.CountUpstreamRequest("offsets", "success")
	return &models.TideOffsets{
		TimeHighMinutes:  offsetsResp.TimeOffsetHighTide,
		TimeLowMinutes:   offsetsResp.TimeOffsetLowTide,
		HeightHighFactor: factorOrDefault(offsetsResp.HeightOffsetHighTide),
		HeightLowFactor:  factorOrDefault(offsetsResp.HeightOffsetLowTide),
	}
}

// A missing height factor defaults to 1.0, matching the pass-through
// policy; a missing time offset stays zero.
func factorOrDefault(factor *float64) float64 {
	if factor == nil {
		return 1.0
	}
	return *factor
}
