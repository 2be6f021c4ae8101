package models

// BestWindow is the structured best-time-to-surf record scraped from a
// narrative AI response. TimeRange is the only mandatory field; everything
// else is nil when the narrative did not mention it.
type BestWindow struct {
	TimeRange       string  `json:"timeRange"`
	Rating          *int    `json:"rating,omitempty"`
	WaveHeightRange *string `json:"waveHeightRange,omitempty"`
	PeriodSeconds   *int    `json:"periodSeconds,omitempty"`
	WindSpeedRange  *string `json:"windSpeedRange,omitempty"`
	Explanation     *string `json:"explanation,omitempty"`
}
