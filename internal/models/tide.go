package models

import "fmt"

type TideType string

const (
	TideTypeHigh TideType = "HIGH"
	TideTypeLow  TideType = "LOW"
)

// TidePoint is one reconciled high/low extremum: UTC time with an explicit
// +00:00 offset and height in feet rounded to two decimals.
type TidePoint struct {
	Time string  `json:"time"`
	Tide float64 `json:"tide"`
}

// TideSeries is the reconciled tide curve extrema for one station and one
// calendar day. ReferenceID is set only when the points were derived from a
// reference station's predictions.
type TideSeries struct {
	StationID   string      `json:"stationId"`
	ReferenceID *string     `json:"referenceStationId,omitempty"`
	StationName string      `json:"stationName"`
	Points      []TidePoint `json:"tideConditions"`
}

// NoaaPrediction represents the raw NOAA API prediction response
type NoaaPrediction struct {
	Time   string  `json:"t"`              // Naive local time of prediction
	Height string  `json:"v"`              // Predicted water level in meters
	Type   *string `json:"type,omitempty"` // H for high, L for low
}

type NoaaResponse struct {
	Predictions []NoaaPrediction `json:"predictions"`
}

// TideSeriesRecord is the cacheable form of a reconciled series.
type TideSeriesRecord struct {
	StationID   string      `json:"stationId" dynamodbav:"stationId"`
	Date        string      `json:"date" dynamodbav:"date"` // YYYY-MM-DD
	ReferenceID *string     `json:"referenceStationId,omitempty" dynamodbav:"referenceStationId,omitempty"`
	StationName string      `json:"stationName" dynamodbav:"stationName"`
	Points      []TidePoint `json:"points" dynamodbav:"points"`
	LastUpdated int64       `json:"lastUpdated" dynamodbav:"lastUpdated"`
	TTL         int64       `json:"ttl" dynamodbav:"ttl"`
}

func (r TideSeriesRecord) Validate() error {
	if r.StationID == "" {
		return fmt.Errorf("missing station id")
	}
	if r.Date == "" {
		return fmt.Errorf("missing date")
	}
	if len(r.Points) == 0 {
		return fmt.Errorf("record for station %s on %s has no points", r.StationID, r.Date)
	}
	return nil
}

// Series converts a cached record back to the response shape.
func (r TideSeriesRecord) Series() *TideSeries {
	return &TideSeries{
		StationID:   r.StationID,
		ReferenceID: r.ReferenceID,
		StationName: r.StationName,
		Points:      r.Points,
	}
}
