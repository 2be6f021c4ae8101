package models

// StationKind mirrors the NOAA metadata API station type field.
type StationKind string

const (
	// StationKindHarmonic is a reference station with directly published predictions.
	StationKindHarmonic StationKind = "R"
	// StationKindSubordinate is predicted as offsets applied to a reference station.
	StationKindSubordinate StationKind = "S"
)

// TideOffsets holds the per-tide-type corrections published for a
// subordinate station: additive minutes and multiplicative height factors.
type TideOffsets struct {
	TimeHighMinutes  int     `json:"timeHighMinutes"`
	TimeLowMinutes   int     `json:"timeLowMinutes"`
	HeightHighFactor float64 `json:"heightHighFactor"`
	HeightLowFactor  float64 `json:"heightLowFactor"`
}

// PassThroughOffsets is the lenient-degrade default applied when a
// subordinate station's offset fetch fails: zero time shift, unit height
// factors. Named policy, not a bug: a partial NOAA outage degrades to
// unadjusted reference predictions instead of failing the tide path.
func PassThroughOffsets() *TideOffsets {
	return &TideOffsets{
		TimeHighMinutes:  0,
		TimeLowMinutes:   0,
		HeightHighFactor: 1.0,
		HeightLowFactor:  1.0,
	}
}

// StationMetadata describes a station's topology. Subordinate stations
// always carry a reference id and offsets; harmonic stations carry neither.
type StationMetadata struct {
	StationID   string       `json:"stationId"`
	Kind        StationKind  `json:"kind"`
	ReferenceID *string      `json:"referenceId,omitempty"`
	Offsets     *TideOffsets `json:"offsets,omitempty"`
}

// IsSubordinate reports whether predictions must be derived from the
// reference station.
func (m *StationMetadata) IsSubordinate() bool {
	return m.Kind == StationKindSubordinate && m.ReferenceID != nil
}
