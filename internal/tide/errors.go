package tide

import "fmt"

// NoStationError indicates the beach has no tide station mapping. Fatal for
// tide data, not for the rest of a surf response.
type NoStationError struct {
	Beach string
}

func (e *NoStationError) Error() string {
	return fmt.Sprintf("no tide station found for %s", e.Beach)
}

func NewNoStationError(beach string) *NoStationError {
	return &NoStationError{Beach: beach}
}

// NoPredictionsError indicates the station is valid but the predictions
// service returned an empty list for the date, e.g. a station outage. Not
// retried; terminal for that date.
type NoPredictionsError struct {
	StationID string
	Date      string
}

func (e *NoPredictionsError) Error() string {
	return fmt.Sprintf("no tide predictions available for station %s on %s", e.StationID, e.Date)
}

func NewNoPredictionsError(stationID, date string) *NoPredictionsError {
	return &NoPredictionsError{StationID: stationID, Date: date}
}

// UpstreamError wraps any transport or parsing failure from the NOAA
// predictions service. Raw transport errors never cross the reconciler
// boundary.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("NOAA API error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("NOAA API error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(message string, err error) *UpstreamError {
	return &UpstreamError{Message: message, Err: err}
}
