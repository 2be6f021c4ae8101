package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTideSeriesRecordValidate(t *testing.T) {
	valid := TideSeriesRecord{
		StationID: "9413745",
		Date:      "2025-06-01",
		Points:    []TidePoint{{Time: "2025-06-01T03:12:00+00:00", Tide: 3.28}},
	}

	tests := []struct {
		name    string
		mutate  func(r *TideSeriesRecord)
		wantErr string
	}{
		{name: "valid", mutate: func(*TideSeriesRecord) {}},
		{
			name:    "missing station id",
			mutate:  func(r *TideSeriesRecord) { r.StationID = "" },
			wantErr: "missing station id",
		},
		{
			name:    "missing date",
			mutate:  func(r *TideSeriesRecord) { r.Date = "" },
			wantErr: "missing date",
		},
		{
			name:    "no points",
			mutate:  func(r *TideSeriesRecord) { r.Points = nil },
			wantErr: "has no points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)

			err := record.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTideSeriesRecordSeries(t *testing.T) {
	referenceID := "9414290"
	record := TideSeriesRecord{
		StationID:   "9413745",
		Date:        "2025-06-01",
		ReferenceID: &referenceID,
		StationName: "Station 9413745 (subordinate, ref: 9414290)",
		Points:      []TidePoint{{Time: "2025-06-01T03:12:00+00:00", Tide: 3.28}},
		LastUpdated: 1748736000,
		TTL:         1748908800,
	}

	series := record.Series()

	assert.Equal(t, record.StationID, series.StationID)
	assert.Equal(t, record.ReferenceID, series.ReferenceID)
	assert.Equal(t, record.StationName, series.StationName)
	assert.Equal(t, record.Points, series.Points)
}

func TestTideSeriesJSONShape(t *testing.T) {
	series := TideSeries{
		StationID:   "9413745",
		StationName: "Station 9413745",
		Points:      []TidePoint{{Time: "2025-06-01T03:12:00+00:00", Tide: 3.28}},
	}

	data, err := json.Marshal(series)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "tideConditions")
	assert.NotContains(t, decoded, "referenceStationId")
}

func TestBestWindowJSONOmitsAbsentFields(t *testing.T) {
	rating := 80
	window := BestWindow{
		TimeRange: "8:00 AM - 9:00 AM",
		Rating:    &rating,
	}

	data, err := json.Marshal(window)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "8:00 AM - 9:00 AM", decoded["timeRange"])
	assert.Equal(t, float64(80), decoded["rating"])
	assert.NotContains(t, decoded, "waveHeightRange")
	assert.NotContains(t, decoded, "explanation")
}

func TestIsSubordinate(t *testing.T) {
	referenceID := "9414290"

	tests := []struct {
		name     string
		metadata StationMetadata
		expected bool
	}{
		{
			name:     "harmonic",
			metadata: StationMetadata{StationID: "9413745", Kind: StationKindHarmonic},
			expected: false,
		},
		{
			name: "subordinate with reference",
			metadata: StationMetadata{
				StationID:   "9413745",
				Kind:        StationKindSubordinate,
				ReferenceID: &referenceID,
			},
			expected: true,
		},
		{
			name:     "subordinate without reference",
			metadata: StationMetadata{StationID: "9413745", Kind: StationKindSubordinate},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.metadata.IsSubordinate())
		})
	}
}
